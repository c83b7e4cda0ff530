// Package api is the synchronous edge of the pipeline: an inbound event
// receiver that answers success as soon as the item is durably queued, plus a
// small administrative surface over the dead letter queue.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"attendance-ingest/internal/device"
	"attendance-ingest/internal/queue"

	"github.com/go-chi/chi/v5"
)

type eventQueue interface {
	Push(ctx context.Context, payload []byte) (int64, error)
	PeekDLQ(ctx context.Context, n int) ([]queue.DeadLetterItem, error)
	ReplayFromDLQ(ctx context.Context, id int64) (bool, error)
	Len(ctx context.Context) (int, error)
	DLQLen(ctx context.Context) (int, error)
}

type API struct {
	Queue eventQueue
}

type Config struct {
	Queue eventQueue
}

func New(cfg Config) *API {
	return &API{Queue: cfg.Queue}
}

func (a *API) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Post("/events", a.ReceiveEvent)
	r.Get("/dlq", a.PeekDLQ)
	r.Post("/dlq/{id}/replay", a.ReplayDLQ)
	r.Get("/queue/stats", a.QueueStats)
	return r
}

// ReceiveEvent accepts one raw event and returns 202 once it is durably
// queued. Processing outcomes are entirely asynchronous; this endpoint never
// reports them.
func (a *API) ReceiveEvent(w http.ResponseWriter, r *http.Request) {
	var req ReceiveEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Fields) == 0 {
		http.Error(w, "fields is required", http.StatusBadRequest)
		return
	}

	event := device.RawEvent{
		DeviceID:   req.DeviceID,
		DeviceName: req.DeviceName,
		ObservedAt: time.Now().UTC(),
		Fields:     req.Fields,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	position, err := a.Queue.Push(r.Context(), payload)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(ReceiveEventResponse{Position: position})
}

func (a *API) PeekDLQ(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	items, err := a.Queue.PeekDLQ(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := PeekDLQResponse{Items: []DeadLetter{}}
	for _, item := range items {
		resp.Items = append(resp.Items, DeadLetter{
			ID:         item.ID,
			Payload:    item.Payload,
			RetryCount: item.RetryCount,
			LastError:  item.LastError,
			FailedAt:   item.FailedAt.Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (a *API) ReplayDLQ(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid dead letter id", http.StatusBadRequest)
		return
	}

	replayed, err := a.Queue.ReplayFromDLQ(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !replayed {
		http.Error(w, "dead letter not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) QueueStats(w http.ResponseWriter, r *http.Request) {
	queued, err := a.Queue.Len(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dead, err := a.Queue.DLQLen(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(QueueStatsResponse{Queued: queued, DeadLetters: dead})
}
