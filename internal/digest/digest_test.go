package digest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUser = "admin"
	testPass = "secret12"
)

func parseAuthParams(header string) map[string]string {
	params := map[string]string{}
	for _, part := range splitParams(strings.TrimPrefix(header, "Digest ")) {
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		params[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"`)
	}
	return params
}

// digestServer challenges unauthenticated requests and verifies the computed
// response hash on the retry.
func digestServer(nonce, qop string, requests *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++
		auth := r.Header.Get("Authorization")
		if auth == "" {
			challenge := fmt.Sprintf(`Digest realm="ISAPI", nonce=%q, opaque="5ccc"`, nonce)
			if qop != "" {
				challenge += fmt.Sprintf(`, qop=%q`, qop)
			}
			w.Header().Set("WWW-Authenticate", challenge)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		params := parseAuthParams(auth)
		ha1 := md5hex(testUser + ":ISAPI:" + testPass)
		ha2 := md5hex(r.Method + ":" + params["uri"])
		var expected string
		if qop != "" {
			expected = md5hex(strings.Join([]string{ha1, nonce, params["nc"], params["cnonce"], "auth", ha2}, ":"))
		} else {
			expected = md5hex(ha1 + ":" + nonce + ":" + ha2)
		}
		if params["response"] != expected {
			w.Header().Set("WWW-Authenticate", fmt.Sprintf(`Digest realm="ISAPI", nonce=%q`, nonce))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
}

func Test_Do_Handshake(t *testing.T) {
	cases := []struct {
		name string
		qop  string
	}{
		{name: "qop auth", qop: "auth"},
		{name: "no qop", qop: ""},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			requests := 0
			server := digestServer("abc", tt.qop, &requests)
			defer server.Close()

			client := NewClient(5 * time.Second)
			body, err := client.Do(
				context.Background(),
				http.MethodPost,
				server.URL+"/api/access/event/search?format=json",
				[]byte(`{}`),
				Credentials{Username: testUser, Password: testPass},
			)

			require.NoError(t, err)
			assert.Equal(t, `{"ok":true}`, string(body))
			// One unauthenticated probe, one authenticated retry.
			assert.Equal(t, 2, requests)
		})
	}
}

func Test_Do_UsesPathAndQueryAsURI(t *testing.T) {
	requests := 0
	var seenURI string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		auth := r.Header.Get("Authorization")
		if auth == "" {
			w.Header().Set("WWW-Authenticate", `Digest realm="ISAPI", nonce="n1", qop="auth"`)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		seenURI = parseAuthParams(auth)["uri"]
		w.Write([]byte(`ok`))
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	_, err := client.Do(context.Background(), http.MethodGet, server.URL+"/a/b?x=1", nil, Credentials{Username: testUser, Password: testPass})

	require.NoError(t, err)
	assert.Equal(t, "/a/b?x=1", seenURI)
}

func Test_Do_NoAuthRequired(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`plain`))
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	body, err := client.Do(context.Background(), http.MethodGet, server.URL, nil, Credentials{})

	require.NoError(t, err)
	assert.Equal(t, "plain", string(body))
	assert.Equal(t, 1, requests)
}

// The client must not loop when the server keeps answering 401 for the same
// nonce.
func Test_Do_RepeatedUnauthorized(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("WWW-Authenticate", `Digest realm="ISAPI", nonce="abc", qop="auth"`)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	_, err := client.Do(context.Background(), http.MethodGet, server.URL, nil, Credentials{Username: "wrong", Password: "wrong"})

	assert.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, 2, requests)
}

func Test_Do_NonDigestChallenge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("WWW-Authenticate", `Basic realm="ISAPI"`)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	_, err := client.Do(context.Background(), http.MethodGet, server.URL, nil, Credentials{})

	assert.ErrorIs(t, err, ErrAuthFailed)
}

func Test_Do_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	_, err := client.Do(context.Background(), http.MethodGet, server.URL, nil, Credentials{})

	assert.ErrorIs(t, err, ErrTransport)
}

func Test_ParseChallenge(t *testing.T) {
	ch, err := parseChallenge(`Digest realm="ISAPI", nonce="abc", qop="auth", opaque="xyz"`)
	require.NoError(t, err)
	assert.Equal(t, "ISAPI", ch.realm)
	assert.Equal(t, "abc", ch.nonce)
	assert.Equal(t, "auth", ch.qop)
	assert.Equal(t, "xyz", ch.opaque)

	_, err = parseChallenge(`Digest realm="ISAPI"`)
	assert.Error(t, err, "missing nonce must be rejected")
}
