package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"attendance-ingest/internal/queue"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

func Test_ReceiveEvent(t *testing.T) {
	cases := []struct {
		name           string
		setupQueue     func() eventQueue
		payload        func() string
		expectedStatus int
	}{
		{
			name: "happy path",
			setupQueue: func() eventQueue {
				mockQueue := &MockeventQueue{}
				mockQueue.EXPECT().Push(mock.Anything, mock.Anything).Return(int64(12), nil)
				return mockQueue
			},
			payload: func() string {
				req := ReceiveEventRequest{
					DeviceID:   7,
					DeviceName: "Main Entrance",
					Fields:     map[string]any{"employeeNoString": "E-100"},
				}
				data, _ := json.Marshal(req)
				return string(data)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name: "invalid body",
			setupQueue: func() eventQueue {
				return &MockeventQueue{}
			},
			payload: func() string {
				return "not json"
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing fields",
			setupQueue: func() eventQueue {
				return &MockeventQueue{}
			},
			payload: func() string {
				return `{"deviceId": 7, "deviceName": "Main Entrance"}`
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "queue error",
			setupQueue: func() eventQueue {
				mockQueue := &MockeventQueue{}
				mockQueue.EXPECT().Push(mock.Anything, mock.Anything).Return(int64(0), errors.New("queue error"))
				return mockQueue
			},
			payload: func() string {
				return `{"deviceId": 7, "fields": {"employeeNoString": "E-100"}}`
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			api := New(Config{Queue: tt.setupQueue()})

			req := httptest.NewRequest(http.MethodPost, "https://test.com/events", bytes.NewBufferString(tt.payload()))
			w := httptest.NewRecorder()
			api.ReceiveEvent(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func Test_PeekDLQ(t *testing.T) {
	cases := []struct {
		name           string
		setupQueue     func() eventQueue
		query          string
		expectedStatus int
	}{
		{
			name: "default limit",
			setupQueue: func() eventQueue {
				mockQueue := &MockeventQueue{}
				mockQueue.EXPECT().PeekDLQ(mock.Anything, 20).Return([]queue.DeadLetterItem{}, nil)
				return mockQueue
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "explicit limit",
			setupQueue: func() eventQueue {
				mockQueue := &MockeventQueue{}
				mockQueue.EXPECT().PeekDLQ(mock.Anything, 5).Return([]queue.DeadLetterItem{}, nil)
				return mockQueue
			},
			query:          "limit=5",
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid limit",
			setupQueue: func() eventQueue {
				return &MockeventQueue{}
			},
			query:          "limit=zero",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "database error",
			setupQueue: func() eventQueue {
				mockQueue := &MockeventQueue{}
				mockQueue.EXPECT().PeekDLQ(mock.Anything, 20).Return(nil, errors.New("database error"))
				return mockQueue
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			api := New(Config{Queue: tt.setupQueue()})

			req := httptest.NewRequest(http.MethodGet, "https://test.com/dlq", nil)
			req.URL.RawQuery = tt.query
			w := httptest.NewRecorder()
			api.PeekDLQ(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func Test_ReplayDLQ(t *testing.T) {
	cases := []struct {
		name           string
		setupQueue     func() eventQueue
		inputID        string
		expectedStatus int
	}{
		{
			name: "replayed",
			setupQueue: func() eventQueue {
				mockQueue := &MockeventQueue{}
				mockQueue.EXPECT().ReplayFromDLQ(mock.Anything, int64(3)).Return(true, nil)
				return mockQueue
			},
			inputID:        "3",
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "not found",
			setupQueue: func() eventQueue {
				mockQueue := &MockeventQueue{}
				mockQueue.EXPECT().ReplayFromDLQ(mock.Anything, int64(3)).Return(false, nil)
				return mockQueue
			},
			inputID:        "3",
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "invalid id",
			setupQueue: func() eventQueue {
				return &MockeventQueue{}
			},
			inputID:        "abc",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "database error",
			setupQueue: func() eventQueue {
				mockQueue := &MockeventQueue{}
				mockQueue.EXPECT().ReplayFromDLQ(mock.Anything, int64(3)).Return(false, errors.New("database error"))
				return mockQueue
			},
			inputID:        "3",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			api := New(Config{Queue: tt.setupQueue()})

			req := httptest.NewRequest(http.MethodPost, "https://test.com/dlq/"+tt.inputID+"/replay", nil)
			ctx := chi.NewRouteContext()
			ctx.URLParams.Add("id", tt.inputID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))

			w := httptest.NewRecorder()
			api.ReplayDLQ(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func Test_QueueStats(t *testing.T) {
	mockQueue := &MockeventQueue{}
	mockQueue.EXPECT().Len(mock.Anything).Return(4, nil)
	mockQueue.EXPECT().DLQLen(mock.Anything).Return(1, nil)

	api := New(Config{Queue: mockQueue})
	req := httptest.NewRequest(http.MethodGet, "https://test.com/queue/stats", nil)
	w := httptest.NewRecorder()
	api.QueueStats(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp QueueStatsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Queued != 4 || resp.DeadLetters != 1 {
		t.Errorf("unexpected stats: %+v", resp)
	}
}
