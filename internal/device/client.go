// Package device speaks the door-access device protocol: a digest
// authenticated JSON search endpoint that pages through access events using a
// caller-supplied continuation id and an advancing result position.
package device

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"attendance-ingest/internal/digest"
)

type SearchStatus string

const (
	StatusMore    SearchStatus = "MORE"
	StatusOK      SearchStatus = "OK"
	StatusNoMatch SearchStatus = "NO MATCH"
)

var ErrSearchFailed = errors.New("event search failed")

// timeLayout carries an explicit UTC offset, which the devices require.
const timeLayout = "2006-01-02T15:04:05-07:00"

type Target struct {
	Host     string
	Username string
	Password string
}

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

type requester interface {
	Do(ctx context.Context, method, url string, body []byte, creds digest.Credentials) ([]byte, error)
}

type Config struct {
	Timeout time.Duration
}

type Client struct {
	http requester
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		http: digest.NewClient(timeout),
	}
}

// SearchEvents fetches one page of access events for the window
// [start, end]. The searchID must stay stable across pages of the same
// search; position is the zero-based offset of the first wanted result.
func (c *Client) SearchEvents(ctx context.Context, target Target, searchID string, position, maxResults int, start, end time.Time) ([]map[string]any, SearchStatus, error) {
	const fn = "Device:SearchEvents"

	var req searchRequest
	req.EventSearch.SearchID = searchID
	req.EventSearch.Position = position
	req.EventSearch.MaxResults = maxResults
	req.EventSearch.StartTime = start.Format(timeLayout)
	req.EventSearch.EndTime = end.Format(timeLayout)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, "", fmt.Errorf("%s:%w:%w", fn, ErrSearchFailed, err)
	}

	url := fmt.Sprintf("http://%s/api/access/event/search?format=json", target.Host)
	creds := digest.Credentials{Username: target.Username, Password: target.Password}
	data, err := c.http.Do(ctx, http.MethodPost, url, body, creds)
	if err != nil {
		return nil, "", fmt.Errorf("%s:%w:%w", fn, ErrSearchFailed, err)
	}

	var resp searchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, "", fmt.Errorf("%s:%w:%w", fn, ErrSearchFailed, err)
	}

	status := SearchStatus(resp.EventSearchResult.ResponseStatus)
	switch status {
	case StatusMore, StatusOK, StatusNoMatch:
	default:
		return nil, "", fmt.Errorf("%s:%w: unknown response status %q", fn, ErrSearchFailed, resp.EventSearchResult.ResponseStatus)
	}
	return resp.EventSearchResult.EventList, status, nil
}
