// devicesim is a stand-in access device for local runs: it serves the digest
// authenticated event search endpoint and pages through synthetic attendance
// events, so the full pipeline can be exercised without hardware.
package main

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	realm    = "devicesim"
	username = "admin"
	password = "admin123"
)

type searchRequest struct {
	EventSearch struct {
		SearchID   string `json:"searchID"`
		Position   int    `json:"searchResultPosition"`
		MaxResults int    `json:"maxResults"`
		StartTime  string `json:"startTime"`
		EndTime    string `json:"endTime"`
	} `json:"EventSearch"`
}

type searchResponse struct {
	EventSearchResult struct {
		SearchID       string           `json:"searchID"`
		ResponseStatus string           `json:"responseStatusStrg"`
		NumOfMatches   int              `json:"numOfMatches"`
		EventList      []map[string]any `json:"eventList"`
	} `json:"EventSearchResult"`
}

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	total := flag.Int("events", 25, "events generated per search window")
	flag.Parse()

	http.HandleFunc("/api/access/event/search", withDigestAuth(func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		start, err := time.Parse("2006-01-02T15:04:05-07:00", req.EventSearch.StartTime)
		if err != nil {
			http.Error(w, "invalid startTime", http.StatusBadRequest)
			return
		}

		events := generateEvents(start, *total)
		position := req.EventSearch.Position
		if position > len(events) {
			position = len(events)
		}
		limit := req.EventSearch.MaxResults
		if limit <= 0 {
			limit = 10
		}
		end := position + limit
		if end > len(events) {
			end = len(events)
		}
		page := events[position:end]

		var resp searchResponse
		resp.EventSearchResult.SearchID = req.EventSearch.SearchID
		resp.EventSearchResult.NumOfMatches = len(page)
		resp.EventSearchResult.EventList = page
		switch {
		case len(events) == 0:
			resp.EventSearchResult.ResponseStatus = "NO MATCH"
		case end < len(events):
			resp.EventSearchResult.ResponseStatus = "MORE"
		default:
			resp.EventSearchResult.ResponseStatus = "OK"
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))

	fmt.Println("devicesim listening on", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		panic(err)
	}
}

// generateEvents fabricates one event per second from the window start, with
// an occasional event that lacks an employee code to exercise the invalid
// event path.
func generateEvents(start time.Time, total int) []map[string]any {
	events := make([]map[string]any, 0, total)
	for i := 0; i < total; i++ {
		event := map[string]any{
			"time":  start.Add(time.Duration(i) * time.Second).Format("2006-01-02T15:04:05-07:00"),
			"minor": 75,
		}
		if i%10 != 9 {
			event["employeeNoString"] = fmt.Sprintf("E-%03d", i%7)
		}
		events = append(events, event)
	}
	return events
}

func withDigestAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Digest ") || !verifyDigest(auth, r.Method, r.URL.RequestURI()) {
			nonce := make([]byte, 16)
			rand.Read(nonce)
			w.Header().Set("WWW-Authenticate", fmt.Sprintf(
				`Digest realm="%s", qop="auth", nonce="%s"`, realm, hex.EncodeToString(nonce)))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// verifyDigest recomputes the RFC 2617 response over the client's own nonce
// material. The nonce itself is not tracked; this is a simulator, not a
// hardened device.
func verifyDigest(auth, method, uri string) bool {
	params := map[string]string{}
	for _, part := range strings.Split(strings.TrimPrefix(auth, "Digest "), ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		params[key] = strings.Trim(value, `"`)
	}
	if params["username"] != username || params["uri"] != uri {
		return false
	}

	ha1 := md5Hex(fmt.Sprintf("%s:%s:%s", username, params["realm"], password))
	ha2 := md5Hex(fmt.Sprintf("%s:%s", method, uri))
	var expected string
	if params["qop"] == "auth" {
		expected = md5Hex(fmt.Sprintf("%s:%s:%s:%s:%s:%s",
			ha1, params["nonce"], params["nc"], params["cnonce"], params["qop"], ha2))
	} else {
		expected = md5Hex(fmt.Sprintf("%s:%s:%s", ha1, params["nonce"], ha2))
	}
	return expected == params["response"]
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
