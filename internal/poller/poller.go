// Package poller drives one polling loop per active device. Each cycle
// re-reads the device row for the current watermark, pages through the
// device's event search, enqueues what it found and advances the watermark
// only past events that were durably enqueued. Queue unavailability is
// recovered by not advancing: the same slice is fetched again next cycle,
// trading possible duplicates for no data loss.
package poller

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"attendance-ingest/internal/db"
	"attendance-ingest/internal/device"

	"github.com/google/uuid"
)

// watermarkSkew is added past the last enqueued event so a device that
// reports events slightly out of order is not re-fetched forever.
const watermarkSkew = 5 * time.Second

// defaultLookback bounds the first window for a device that has never been
// polled.
const defaultLookback = 10 * time.Minute

type configStore interface {
	LoadDevice(ctx context.Context, id int64) (db.DeviceConfig, error)
	SaveWatermark(ctx context.Context, id int64, watermark time.Time) error
}

type eventSearcher interface {
	SearchEvents(ctx context.Context, target device.Target, searchID string, position, maxResults int, start, end time.Time) ([]map[string]any, device.SearchStatus, error)
}

type eventSink interface {
	Push(ctx context.Context, payload []byte) (int64, error)
}

type Config struct {
	Device   db.DeviceConfig
	Store    configStore
	Client   eventSearcher
	Sink     eventSink
	PageSize int
	MaxPages int
}

type Poller struct {
	deviceID int64
	interval time.Duration
	store    configStore
	client   eventSearcher
	sink     eventSink
	pageSize int
	maxPages int

	inFlight atomic.Bool
	stopOnce sync.Once
	stopped  chan struct{}

	now func() time.Time
}

func New(cfg Config) *Poller {
	interval := time.Duration(cfg.Device.PollIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = 1000
	}
	return &Poller{
		deviceID: cfg.Device.ID,
		interval: interval,
		store:    cfg.Store,
		client:   cfg.Client,
		sink:     cfg.Sink,
		pageSize: pageSize,
		maxPages: maxPages,
		stopped:  make(chan struct{}),
		now:      time.Now,
	}
}

// Run ticks until ctx is cancelled or the device is deactivated. The guard
// flag skips a tick while a cycle is still in flight; cycles are never queued
// up.
func (p *Poller) Run(ctx context.Context) {
	slog.InfoContext(ctx, "Device poller started...", "device_id", p.deviceID, "interval", p.interval)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Device poller stopped...", "device_id", p.deviceID)
			return
		case <-p.stopped:
			slog.InfoContext(ctx, "Device deactivated, poller stopped...", "device_id", p.deviceID)
			return
		case <-ticker.C:
			if !p.inFlight.CompareAndSwap(false, true) {
				slog.InfoContext(ctx, "Previous cycle still in flight, skipping tick", "device_id", p.deviceID)
				continue
			}
			go func() {
				defer p.inFlight.Store(false)
				if stop := p.Cycle(ctx); stop {
					p.stopOnce.Do(func() { close(p.stopped) })
				}
			}()
		}
	}
}

// Cycle runs one poll. It returns true when the device has been deactivated
// and the poller should stop.
func (p *Poller) Cycle(ctx context.Context) bool {
	// Always re-read the row; another process may have advanced the
	// watermark since the last cycle.
	dev, err := p.store.LoadDevice(ctx, p.deviceID)
	if err != nil {
		slog.ErrorContext(ctx, "Error loading device config", "device_id", p.deviceID, "error", err)
		return false
	}
	if !dev.IsActive {
		return true
	}

	end := p.now()
	start := end.Add(-defaultLookback)
	if dev.LastPollTime != nil {
		start = *dev.LastPollTime
	}
	if !start.Before(end) {
		return false
	}

	events, err := p.fetchWindow(ctx, dev, start, end)
	if err != nil {
		slog.ErrorContext(ctx, "Error fetching events, will retry next cycle",
			"device_id", p.deviceID,
			"error", err,
		)
		return false
	}

	valid := make([]device.RawEvent, 0, len(events))
	for _, event := range events {
		if event.EmployeeCode() == "" {
			slog.InfoContext(ctx, "Dropping event without employee identifier", "device_id", p.deviceID)
			continue
		}
		valid = append(valid, event)
	}
	// Pages are not guaranteed ordered.
	sort.Slice(valid, func(i, j int) bool {
		return valid[i].Timestamp().Before(valid[j].Timestamp())
	})

	enqueued, pushFailed := p.enqueue(ctx, valid)

	watermark, ok := nextWatermark(dev.LastPollTime, enqueued, pushFailed, end)
	if !ok {
		return false
	}
	if err := p.store.SaveWatermark(ctx, p.deviceID, watermark); err != nil {
		slog.ErrorContext(ctx, "Error saving watermark", "device_id", p.deviceID, "error", err)
		return false
	}
	slog.InfoContext(ctx, "Poll cycle complete",
		"device_id", p.deviceID,
		"events", len(valid),
		"enqueued", len(enqueued),
		"watermark", watermark,
	)
	return false
}

// fetchWindow pages through the device search with a stable continuation id,
// capped so a misbehaving device cannot keep a cycle alive forever.
func (p *Poller) fetchWindow(ctx context.Context, dev db.DeviceConfig, start, end time.Time) ([]device.RawEvent, error) {
	target := device.Target{Host: dev.Host, Username: dev.Username, Password: dev.Password}
	searchID := uuid.NewString()
	observed := p.now()

	var events []device.RawEvent
	position := 0
	for page := 0; page < p.maxPages; page++ {
		fields, status, err := p.client.SearchEvents(ctx, target, searchID, position, p.pageSize, start, end)
		if err != nil {
			return nil, err
		}
		for _, f := range fields {
			events = append(events, device.RawEvent{
				DeviceID:   dev.ID,
				DeviceName: dev.Name,
				ObservedAt: observed,
				Fields:     f,
			})
		}
		position += len(fields)
		if status != device.StatusMore || len(fields) == 0 {
			break
		}
	}
	return events, nil
}

// enqueue pushes events in order and stops at the first failure, so the
// watermark can only cover an unbroken prefix of successfully queued events.
func (p *Poller) enqueue(ctx context.Context, events []device.RawEvent) ([]device.RawEvent, bool) {
	enqueued := make([]device.RawEvent, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			slog.ErrorContext(ctx, "Error marshalling event", "device_id", p.deviceID, "error", err)
			return enqueued, true
		}
		if _, err := p.sink.Push(ctx, payload); err != nil {
			slog.ErrorContext(ctx, "Error enqueueing event", "device_id", p.deviceID, "error", err)
			return enqueued, true
		}
		enqueued = append(enqueued, event)
	}
	return enqueued, false
}

// nextWatermark decides how far the watermark may advance. It never moves
// backwards and never past the last successfully enqueued event.
func nextWatermark(last *time.Time, enqueued []device.RawEvent, pushFailed bool, end time.Time) (time.Time, bool) {
	if len(enqueued) > 0 {
		candidate := enqueued[len(enqueued)-1].Timestamp().Add(watermarkSkew)
		if last != nil && last.After(candidate) {
			candidate = *last
		}
		return candidate, true
	}
	if pushFailed {
		// Nothing made it to the queue; leave the watermark alone so the
		// whole slice is fetched again.
		return time.Time{}, false
	}
	// Window yielded no enqueueable events; move to the window end so the
	// poller does not starve on it.
	return end, true
}
