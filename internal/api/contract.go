package api

import "encoding/json"

type ReceiveEventRequest struct {
	DeviceID   int64          `json:"deviceId"`
	DeviceName string         `json:"deviceName"`
	Fields     map[string]any `json:"fields"`
}

type ReceiveEventResponse struct {
	Position int64 `json:"position"`
}

type DeadLetter struct {
	ID         int64           `json:"id"`
	Payload    json.RawMessage `json:"payload"`
	RetryCount int             `json:"retryCount"`
	LastError  string          `json:"lastError"`
	FailedAt   string          `json:"failedAt"`
}

type PeekDLQResponse struct {
	Items []DeadLetter `json:"items"`
}

type QueueStatsResponse struct {
	Queued      int `json:"queued"`
	DeadLetters int `json:"deadLetters"`
}
