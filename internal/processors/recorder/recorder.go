// Package recorder drains the attendance event queue: each worker pops one
// raw event, normalizes it, persists the attendance record and publishes a
// record_created event for the notifier. Failures are retried in place with
// exponential backoff before the item is dead-lettered; a single bad item
// never stops a worker.
package recorder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"attendance-ingest/internal/db"
	"attendance-ingest/internal/device"
	"attendance-ingest/internal/queue"
	"attendance-ingest/internal/worker"

	k "attendance-ingest/internal/kafka"

	"github.com/segmentio/kafka-go"
)

var (
	ErrMissingEmployee = errors.New("event has no employee code")
	ErrPersist         = errors.New("record persist failed")
	ErrEmit            = errors.New("record created event emit failed")
)

type eventQueue interface {
	PopBlocking(ctx context.Context, timeout time.Duration) (*queue.Item, error)
	Ack(ctx context.Context, id int64) error
	PushToDLQ(ctx context.Context, item *queue.Item, cause error, retryCount int) error
}

type recordStore interface {
	CreateRecord(ctx context.Context, record db.AttendanceRecord) (db.AttendanceRecord, error)
}

type Config struct {
	Queue      *queue.Queue
	Store      *db.DB
	Brokers    string
	Topic      string
	Workers    int
	MaxRetries int
	PopTimeout time.Duration
}

type Recorder struct {
	pool       *worker.Pool
	queue      eventQueue
	store      recordStore
	writer     k.Writer
	maxRetries int
	popTimeout time.Duration
	// Base delay for the in-place retry backoff; attempt n sleeps
	// backoffBase << (n-1). Tests shrink this.
	backoffBase time.Duration
}

func New(cfg Config) *Recorder {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 3
	}
	popTimeout := cfg.PopTimeout
	if popTimeout <= 0 {
		popTimeout = 5 * time.Second
	}
	recorder := &Recorder{
		queue: cfg.Queue,
		store: cfg.Store,
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers: []string{cfg.Brokers},
			Topic:   cfg.Topic,
		}),
		maxRetries:  maxRetries,
		popTimeout:  popTimeout,
		backoffBase: time.Second,
	}
	recorder.pool = worker.NewPool("recorder-worker", cfg.Workers, recorder)
	return recorder
}

func (r *Recorder) Run(ctx context.Context) {
	r.pool.Run(ctx)
}

func (r *Recorder) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing recorder resources...")
	r.writer.Close()
}

func (r *Recorder) ProcessMessage(ctx context.Context) {
	item, err := r.queue.PopBlocking(ctx, r.popTimeout)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.ErrorContext(ctx, "Error popping event", "error", err)
		}
		return
	}
	if item == nil {
		return // pop timed out, nothing to do
	}
	r.processItem(ctx, item)
}

// processItem always terminates the attempt for this item: ack on success or
// permanent skip, dead-letter on retry exhaustion.
func (r *Recorder) processItem(ctx context.Context, item *queue.Item) {
	var raw device.RawEvent
	if err := json.Unmarshal(item.Payload, &raw); err != nil {
		// Malformed payloads are permanently invalid: log and drop.
		slog.InfoContext(ctx, "Malformed event payload, skipping",
			"error", err,
			"item_id", item.ID,
		)
		r.ack(ctx, item)
		return
	}

	if raw.EmployeeCode() == "" {
		slog.InfoContext(ctx, "Event without employee code, skipping",
			"item_id", item.ID,
			"device_id", raw.DeviceID,
		)
		r.ack(ctx, item)
		return
	}

	var (
		persisted bool
		record    db.AttendanceRecord
		lastErr   error
	)
	for attempt := 0; attempt < r.maxRetries; attempt++ {
		if attempt > 0 {
			delay := r.backoffBase << (attempt - 1)
			slog.InfoContext(ctx, "Retrying event",
				"item_id", item.ID,
				"attempt", attempt+1,
				"delay", delay,
			)
			time.Sleep(delay)
		}

		if !persisted {
			record, lastErr = r.persist(ctx, raw, item)
			if lastErr != nil {
				continue
			}
			persisted = true
		}

		// Emission failure never rolls back the committed record; only the
		// emit is re-attempted.
		lastErr = r.emit(ctx, record, raw.DeviceName)
		if lastErr == nil {
			break
		}
	}

	if lastErr != nil {
		if persisted {
			// The record is committed; losing the notification is preferable
			// to dead-lettering an event that would be persisted twice.
			slog.ErrorContext(ctx, "Record persisted but event emit exhausted retries",
				"item_id", item.ID,
				"record_id", record.ID,
				"error", lastErr,
			)
			r.ack(ctx, item)
			return
		}
		slog.ErrorContext(ctx, "Event exhausted retries, dead-lettering",
			"item_id", item.ID,
			"error", lastErr,
		)
		if err := r.queue.PushToDLQ(ctx, item, lastErr, r.maxRetries); err != nil {
			slog.ErrorContext(ctx, "Error dead-lettering event", "item_id", item.ID, "error", err)
		}
		return
	}

	r.ack(ctx, item)
	slog.InfoContext(ctx, "Recorded attendance event",
		"record_id", record.ID,
		"employee_code", record.EmployeeCode,
		"event_type", record.EventType,
	)
}

func (r *Recorder) persist(ctx context.Context, raw device.RawEvent, item *queue.Item) (db.AttendanceRecord, error) {
	const fn = "Recorder:persist"
	record := db.AttendanceRecord{
		EmployeeCode: raw.EmployeeCode(),
		DeviceID:     raw.DeviceID,
		EventType:    raw.EventType(),
		EventTime:    raw.Timestamp(),
		Verified:     true,
		RawData:      item.Payload,
	}
	if url := raw.ImageURL(); url != "" {
		record.ImageURL = &url
	}
	created, err := r.store.CreateRecord(ctx, record)
	if err != nil {
		return db.AttendanceRecord{}, fmt.Errorf("%s:%w:%w", fn, ErrPersist, err)
	}
	return created, nil
}

func (r *Recorder) emit(ctx context.Context, record db.AttendanceRecord, deviceName string) error {
	const fn = "Recorder:emit"
	event := k.RecordCreated{
		RecordID:     record.ID,
		EmployeeCode: record.EmployeeCode,
		EventType:    record.EventType,
		EventTime:    record.EventTime,
		DeviceName:   deviceName,
	}
	out, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrEmit, err)
	}
	err = r.writer.WriteMessages(ctx, kafka.Message{Key: []byte(record.EmployeeCode), Value: out})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrEmit, err)
	}
	return nil
}

func (r *Recorder) ack(ctx context.Context, item *queue.Item) {
	if err := r.queue.Ack(ctx, item.ID); err != nil {
		slog.ErrorContext(ctx, "Error acking event", "item_id", item.ID, "error", err)
	}
}
