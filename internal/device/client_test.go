package device

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SearchEvents(t *testing.T) {
	var gotReq searchRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		fmt.Fprint(w, `{
			"EventSearchResult": {
				"searchID": "s-1",
				"responseStatusStrg": "MORE",
				"numOfMatches": 2,
				"eventList": [
					{"employeeNoString": "E1", "time": "2024-05-01T08:00:00+03:00"},
					{"employeeNoString": "E2", "time": "2024-05-01T08:01:00+03:00"}
				]
			}
		}`)
	}))
	defer server.Close()

	client := NewClient(Config{})
	target := Target{Host: strings.TrimPrefix(server.URL, "http://"), Username: "admin", Password: "pw"}
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.FixedZone("EAT", 3*3600))
	end := start.Add(time.Hour)

	events, status, err := client.SearchEvents(context.Background(), target, "s-1", 40, 20, start, end)

	require.NoError(t, err)
	assert.Equal(t, StatusMore, status)
	assert.Len(t, events, 2)
	assert.Equal(t, "E1", events[0]["employeeNoString"])

	assert.Equal(t, "s-1", gotReq.EventSearch.SearchID)
	assert.Equal(t, 40, gotReq.EventSearch.Position)
	assert.Equal(t, 20, gotReq.EventSearch.MaxResults)
	// Timestamps must carry an explicit UTC offset.
	assert.Equal(t, "2024-05-01T08:00:00+03:00", gotReq.EventSearch.StartTime)
	assert.Equal(t, "2024-05-01T09:00:00+03:00", gotReq.EventSearch.EndTime)
}

func Test_SearchEvents_Statuses(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantStatus SearchStatus
		wantErr    bool
	}{
		{
			name:       "no more results",
			body:       `{"EventSearchResult": {"responseStatusStrg": "OK", "eventList": [{"employeeNoString": "E1"}]}}`,
			wantStatus: StatusOK,
		},
		{
			name:       "no match",
			body:       `{"EventSearchResult": {"responseStatusStrg": "NO MATCH"}}`,
			wantStatus: StatusNoMatch,
		},
		{
			name:    "unknown status",
			body:    `{"EventSearchResult": {"responseStatusStrg": "WHAT"}}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `<xml/>`,
			wantErr: true,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer server.Close()

			client := NewClient(Config{})
			target := Target{Host: strings.TrimPrefix(server.URL, "http://")}
			_, status, err := client.SearchEvents(context.Background(), target, "s", 0, 10, time.Now().Add(-time.Hour), time.Now())

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrSearchFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func Test_SearchEvents_DeviceUnreachable(t *testing.T) {
	client := NewClient(Config{Timeout: time.Second})
	target := Target{Host: "127.0.0.1:1"}
	_, _, err := client.SearchEvents(context.Background(), target, "s", 0, 10, time.Now().Add(-time.Hour), time.Now())

	assert.ErrorIs(t, err, ErrSearchFailed)
}
