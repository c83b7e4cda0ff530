package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"attendance-ingest/internal/api"
	"attendance-ingest/internal/config"
	"attendance-ingest/internal/db"
	"attendance-ingest/internal/device"
	"attendance-ingest/internal/poller"
	"attendance-ingest/internal/processors/notifier"
	"attendance-ingest/internal/processors/recorder"
	"attendance-ingest/internal/queue"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting attendance ingest service...")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)})))

	database, err := db.Init(ctx, db.Config{
		ConnString:     cfg.DatabaseURL,
		MigrationsPath: cfg.MigrationsPath,
	})
	if err != nil {
		panic(err)
	}
	defer database.Close()

	eventQueue := queue.New(queue.Config{
		Pool: database.Pool(),
		Name: queue.Events,
	})
	retryQueue := queue.New(queue.Config{
		Pool: database.Pool(),
		Name: queue.NotifyRetry,
	})

	// Items claimed by a worker that died come back after the visibility
	// window.
	if _, err := eventQueue.ReclaimStale(ctx, 5*time.Minute); err != nil {
		slog.ErrorContext(ctx, "Error reclaiming stale events", "error", err)
	}
	if _, err := retryQueue.ReclaimStale(ctx, 5*time.Minute); err != nil {
		slog.ErrorContext(ctx, "Error reclaiming stale notification retries", "error", err)
	}

	deviceClient := device.NewClient(device.Config{})

	pollers, err := poller.NewManager(ctx, poller.ManagerConfig{
		Store:           database,
		Client:          deviceClient,
		Sink:            eventQueue,
		PageSize:        cfg.PageSize,
		MaxPages:        cfg.MaxPagesPerCycle,
		DefaultInterval: time.Duration(cfg.DefaultPollIntervalSeconds) * time.Second,
	})
	if err != nil {
		panic(err)
	}

	wRecorder := recorder.New(recorder.Config{
		Queue:      eventQueue,
		Store:      database,
		Brokers:    cfg.KafkaBrokers,
		Topic:      cfg.RecordCreatedTopic,
		Workers:    cfg.WorkerCount,
		MaxRetries: cfg.WorkerMaxRetries,
		PopTimeout: time.Duration(cfg.PopTimeoutSeconds) * time.Second,
	})
	wNotifier := notifier.New(notifier.Config{
		Brokers:    cfg.KafkaBrokers,
		Topic:      cfg.RecordCreatedTopic,
		GroupID:    cfg.NotifierGroupID,
		Resolver:   database,
		Transport:  notifier.NopTransport{},
		RetryQueue: retryQueue,
		MaxRetries: cfg.NotifyMaxRetries,
	})

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		pollers.Run(ctx)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		wRecorder.Run(ctx)
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		wNotifier.Run(ctx)
	}()

	go func() {
		<-sigs
		cancel()
	}()

	receiver := api.New(api.Config{Queue: eventQueue})
	server := &http.Server{Addr: cfg.HTTPAddr, Handler: receiver.Router()}
	go func() {
		slog.InfoContext(ctx, "HTTP receiver listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	}()

	wg.Wait()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)

	wRecorder.Close(ctx)
	wNotifier.Close(ctx)
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
