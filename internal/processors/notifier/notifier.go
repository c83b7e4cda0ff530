// Package notifier consumes record_created events and delivers push
// notifications. Delivery failures go to their own retry queue with a bounded
// backoff schedule, so a notification outage never blocks attendance
// recording.
package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"attendance-ingest/internal/queue"
	"attendance-ingest/internal/worker"

	k "attendance-ingest/internal/kafka"

	"github.com/segmentio/kafka-go"
)

var (
	ErrReadMessage  = errors.New("error reading message")
	ErrParseMessage = errors.New("error parsing message")
	ErrDeliver      = errors.New("push delivery failed")
)

// backoffDelays is indexed by retry count, clamped to the last entry.
var backoffDelays = []time.Duration{5 * time.Second, 15 * time.Second, 60 * time.Second}

var eventTypeLabels = map[string]string{
	"IN":          "Check-in",
	"OUT":         "Check-out",
	"BREAK_START": "Break started",
	"BREAK_END":   "Break ended",
}

type TokenOutcome struct {
	Token string
	Err   error
}

// PushTransport is the delivery collaborator. Implementations live outside
// this service.
type PushTransport interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]TokenOutcome, error)
}

type tokenResolver interface {
	TokensFor(ctx context.Context, employeeCode string) ([]string, error)
}

type retryQueue interface {
	PushRetry(ctx context.Context, payload []byte, retryCount int, lastErr string) (int64, error)
	PopBlocking(ctx context.Context, timeout time.Duration) (*queue.Item, error)
	Ack(ctx context.Context, id int64) error
	Requeue(ctx context.Context, id int64, lastErr string) error
	PushToDLQ(ctx context.Context, item *queue.Item, cause error, retryCount int) error
}

type Config struct {
	Brokers    string
	Topic      string
	GroupID    string
	Resolver   tokenResolver
	Transport  PushTransport
	RetryQueue *queue.Queue
	MaxRetries int
	PopTimeout time.Duration
}

type Notifier struct {
	worker     *worker.Worker
	reader     k.Reader
	resolver   tokenResolver
	transport  PushTransport
	retry      retryQueue
	maxRetries int
	popTimeout time.Duration
	// Backoff schedule for the retry loop; tests shrink it.
	delays []time.Duration
}

func New(cfg Config) *Notifier {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 5
	}
	popTimeout := cfg.PopTimeout
	if popTimeout <= 0 {
		popTimeout = 2 * time.Second
	}
	notifier := &Notifier{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: []string{cfg.Brokers},
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
		}),
		resolver:   cfg.Resolver,
		transport:  cfg.Transport,
		retry:      cfg.RetryQueue,
		maxRetries: maxRetries,
		popTimeout: popTimeout,
		delays:     backoffDelays,
	}
	notifier.worker = worker.New(worker.Config{
		Name:      "notifier-worker",
		Processor: notifier,
	})
	return notifier
}

// Run blocks until ctx is cancelled, driving both the dispatcher and the
// retry loop.
func (n *Notifier) Run(ctx context.Context) {
	retryWorker := worker.New(worker.Config{
		Name:      "notifier-retry-worker",
		Processor: &retryProcessor{notifier: n},
	})

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		n.worker.Run(ctx)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		retryWorker.Run(ctx)
	}()
	wg.Wait()
}

func (n *Notifier) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing notifier resources...")
	n.reader.Close()
}

func (n *Notifier) ProcessMessage(ctx context.Context) {
	m, err := n.reader.ReadMessage(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.ErrorContext(ctx, "Error reading message", "error", err)
		}
		return
	}
	var event k.RecordCreated
	if err := json.Unmarshal(m.Value, &event); err != nil {
		slog.ErrorContext(ctx, "Error parsing record created event", "error", err)
		return
	}
	n.dispatch(ctx, event)
}

// dispatch attempts first delivery. Transport failures are queued for retry;
// an employee without registered tokens is a no-op.
func (n *Notifier) dispatch(ctx context.Context, event k.RecordCreated) {
	err := n.deliver(ctx, event)
	if err == nil || errors.Is(err, errNoTokens) {
		return
	}
	slog.ErrorContext(ctx, "Push delivery failed, queueing for retry",
		"record_id", event.RecordID,
		"error", err,
	)
	payload, merr := json.Marshal(event)
	if merr != nil {
		slog.ErrorContext(ctx, "Error marshalling retry payload", "error", merr)
		return
	}
	if _, qerr := n.retry.PushRetry(ctx, payload, 0, err.Error()); qerr != nil {
		slog.ErrorContext(ctx, "Error queueing notification retry", "error", qerr)
	}
}

var errNoTokens = errors.New("no registered tokens")

func (n *Notifier) deliver(ctx context.Context, event k.RecordCreated) error {
	const fn = "Notifier:deliver"
	tokens, err := n.resolver.TokensFor(ctx, event.EmployeeCode)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeliver, err)
	}
	if len(tokens) == 0 {
		return errNoTokens
	}

	title, body := composeMessage(event)
	data := map[string]string{
		"record_id":  event.RecordID,
		"event_type": event.EventType,
	}
	outcomes, err := n.transport.Send(ctx, tokens, title, body, data)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeliver, err)
	}
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			slog.InfoContext(ctx, "Push rejected for token",
				"record_id", event.RecordID,
				"error", outcome.Err,
			)
		}
	}
	return nil
}

func composeMessage(event k.RecordCreated) (string, string) {
	label, ok := eventTypeLabels[event.EventType]
	if !ok {
		label = "Attendance event"
	}
	title := fmt.Sprintf("%s recorded", label)
	body := fmt.Sprintf("%s at %s via %s",
		label,
		event.EventTime.Format("15:04"),
		event.DeviceName,
	)
	return title, body
}

// retryProcessor drains the notification retry queue one item at a time.
type retryProcessor struct {
	notifier *Notifier
}

func (p *retryProcessor) ProcessMessage(ctx context.Context) {
	n := p.notifier
	item, err := n.retry.PopBlocking(ctx, n.popTimeout)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.ErrorContext(ctx, "Error popping notification retry", "error", err)
		}
		return
	}
	if item == nil {
		return
	}

	delay := n.delays[min(item.RetryCount, len(n.delays)-1)]
	time.Sleep(delay)

	var event k.RecordCreated
	if err := json.Unmarshal(item.Payload, &event); err != nil {
		slog.ErrorContext(ctx, "Malformed notification retry payload, dropping",
			"item_id", item.ID,
			"error", err,
		)
		n.ackRetry(ctx, item)
		return
	}

	err = n.deliver(ctx, event)
	if err == nil || errors.Is(err, errNoTokens) {
		n.ackRetry(ctx, item)
		return
	}

	if item.RetryCount+1 >= n.maxRetries {
		slog.ErrorContext(ctx, "Notification exhausted retries, dead-lettering",
			"item_id", item.ID,
			"record_id", event.RecordID,
			"error", err,
		)
		if derr := n.retry.PushToDLQ(ctx, item, err, item.RetryCount+1); derr != nil {
			slog.ErrorContext(ctx, "Error dead-lettering notification", "item_id", item.ID, "error", derr)
		}
		return
	}

	if rerr := n.retry.Requeue(ctx, item.ID, err.Error()); rerr != nil {
		slog.ErrorContext(ctx, "Error requeueing notification", "item_id", item.ID, "error", rerr)
	}
}

func (n *Notifier) ackRetry(ctx context.Context, item *queue.Item) {
	if err := n.retry.Ack(ctx, item.ID); err != nil {
		slog.ErrorContext(ctx, "Error acking notification retry", "item_id", item.ID, "error", err)
	}
}
