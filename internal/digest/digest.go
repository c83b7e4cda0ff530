// Package digest implements an HTTP client for devices that require HTTP
// Digest authentication (RFC 2617). The handshake is one unauthenticated
// probe followed by exactly one authenticated retry; repeated 401s for the
// same request are an auth failure, not something to retry here.
package digest

import (
	"bytes"
	"context"
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrAuthFailed = errors.New("digest authentication failed")
	ErrTransport  = errors.New("device transport failure")
)

type Credentials struct {
	Username string
	Password string
}

type challenge struct {
	realm  string
	nonce  string
	qop    string
	opaque string
}

type Client struct {
	http *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
	}
}

// Do performs a request, transparently answering a digest challenge. On 2xx
// it returns the response body. Non-2xx statuses on the authenticated retry
// are terminal for this request; retrying is the caller's responsibility.
func (c *Client) Do(ctx context.Context, method, url string, body []byte, creds Credentials) ([]byte, error) {
	const fn = "Digest:Do"

	resp, err := c.send(ctx, method, url, body, "")
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrTransport, err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return c.consume(resp)
	}

	header := resp.Header.Get("WWW-Authenticate")
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	ch, err := parseChallenge(header)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrAuthFailed, err)
	}

	auth, err := authorization(method, url, creds, ch)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrAuthFailed, err)
	}

	resp, err = c.send(ctx, method, url, body, auth)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrTransport, err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("%s:%w: credentials rejected for nonce %q", fn, ErrAuthFailed, ch.nonce)
	}
	return c.consume(resp)
}

func (c *Client) send(ctx context.Context, method, url string, body []byte, auth string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	return c.http.Do(req)
}

func (c *Client) consume(resp *http.Response) ([]byte, error) {
	const fn = "Digest:consume"
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s:%w: unexpected status %d", fn, ErrTransport, resp.StatusCode)
	}
	return data, nil
}

func parseChallenge(header string) (challenge, error) {
	if !strings.HasPrefix(header, "Digest ") {
		return challenge{}, fmt.Errorf("not a digest challenge: %q", header)
	}
	params := map[string]string{}
	for _, part := range splitParams(strings.TrimPrefix(header, "Digest ")) {
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		params[strings.TrimSpace(key)] = strings.Trim(strings.TrimSpace(value), `"`)
	}
	ch := challenge{
		realm:  params["realm"],
		nonce:  params["nonce"],
		qop:    params["qop"],
		opaque: params["opaque"],
	}
	if ch.nonce == "" {
		return challenge{}, fmt.Errorf("challenge missing nonce: %q", header)
	}
	return ch, nil
}

// splitParams splits a challenge parameter list on commas that are not inside
// quoted values.
func splitParams(s string) []string {
	var parts []string
	var current strings.Builder
	quoted := false
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
			current.WriteRune(r)
		case r == ',' && !quoted:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

func authorization(method, rawURL string, creds Credentials, ch challenge) (string, error) {
	uri := requestURI(rawURL)
	ha1 := md5hex(creds.Username + ":" + ch.realm + ":" + creds.Password)
	ha2 := md5hex(method + ":" + uri)

	var response, cnonce string
	const nc = "00000001"
	if strings.Contains(ch.qop, "auth") {
		var err error
		cnonce, err = newCnonce()
		if err != nil {
			return "", err
		}
		response = md5hex(strings.Join([]string{ha1, ch.nonce, nc, cnonce, "auth", ha2}, ":"))
	} else {
		response = md5hex(ha1 + ":" + ch.nonce + ":" + ha2)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Digest username=%q, realm=%q, nonce=%q, uri=%q, response=%q, algorithm=MD5`,
		creds.Username, ch.realm, ch.nonce, uri, response)
	if cnonce != "" {
		fmt.Fprintf(&b, `, qop=auth, nc=%s, cnonce=%q`, nc, cnonce)
	}
	if ch.opaque != "" {
		fmt.Fprintf(&b, `, opaque=%q`, ch.opaque)
	}
	return b.String(), nil
}

func requestURI(rawURL string) string {
	// The digest uri is the path plus query, not the absolute URL.
	rest := rawURL
	if idx := strings.Index(rest, "://"); idx >= 0 {
		rest = rest[idx+3:]
	}
	if idx := strings.Index(rest, "/"); idx >= 0 {
		return rest[idx:]
	}
	return "/"
}

func newCnonce() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func md5hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
