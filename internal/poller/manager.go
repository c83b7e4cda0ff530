package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"attendance-ingest/internal/db"
)

type deviceStore interface {
	configStore
	ListActiveDevices(ctx context.Context) ([]db.DeviceConfig, error)
}

type ManagerConfig struct {
	Store    deviceStore
	Client   eventSearcher
	Sink     eventSink
	PageSize int
	MaxPages int
	// Applied to devices whose row carries no usable interval.
	DefaultInterval time.Duration
}

// Manager owns one independent poller per active device.
type Manager struct {
	pollers []*Poller
}

func NewManager(ctx context.Context, cfg ManagerConfig) (*Manager, error) {
	devices, err := cfg.Store.ListActiveDevices(ctx)
	if err != nil {
		return nil, err
	}
	manager := &Manager{}
	for _, dev := range devices {
		if dev.PollIntervalSeconds <= 0 && cfg.DefaultInterval > 0 {
			dev.PollIntervalSeconds = int(cfg.DefaultInterval.Seconds())
		}
		manager.pollers = append(manager.pollers, New(Config{
			Device:   dev,
			Store:    cfg.Store,
			Client:   cfg.Client,
			Sink:     cfg.Sink,
			PageSize: cfg.PageSize,
			MaxPages: cfg.MaxPages,
		}))
	}
	slog.InfoContext(ctx, "Device pollers configured", "devices", len(manager.pollers))
	return manager, nil
}

// Run blocks until every poller has stopped. A poller failing or stopping
// never affects its siblings.
func (m *Manager) Run(ctx context.Context) {
	wg := sync.WaitGroup{}
	for _, p := range m.pollers {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Run(ctx)
		}()
	}
	wg.Wait()
}
