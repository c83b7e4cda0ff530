package db

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var DBPool *DB

// Setup the testcontainer DB before running any ops tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
	)
	if err != nil {
		panic(err)
	}
	defer pgContainer.Terminate(ctx)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}

	DBPool, err = Init(ctx, Config{
		ConnString:     connStr,
		MigrationsPath: "./migrations",
	})
	if err != nil {
		panic(err)
	}

	m.Run()

	pgContainer.Terminate(ctx)
	DBPool.Close()
}

func createDevice(t *testing.T, name string, active bool) int64 {
	t.Helper()
	var id int64
	err := DBPool.pool.QueryRow(context.Background(), `
			INSERT INTO device_configs (name, host, username, password, is_active)
			VALUES ($1, '10.0.0.1', 'admin', 'pw', $2)
			RETURNING id
		`, name, active).Scan(&id)
	if err != nil {
		t.Fatalf("inserting device: %v", err)
	}
	return id
}

func TestDevices(t *testing.T) {
	ctx := context.Background()
	activeID := createDevice(t, "Lobby", true)
	createDevice(t, "Storage", false)

	devices, err := DBPool.ListActiveDevices(ctx)
	if err != nil {
		t.Fatalf("ListActiveDevices failed: %v", err)
	}
	for _, dev := range devices {
		if dev.Name == "Storage" {
			t.Fatalf("inactive device listed: %+v", dev)
		}
	}

	dev, err := DBPool.LoadDevice(ctx, activeID)
	if err != nil {
		t.Fatalf("LoadDevice failed: %v", err)
	}
	if dev.Name != "Lobby" || dev.LastPollTime != nil {
		t.Fatalf("unexpected device: %+v", dev)
	}
}

func TestSaveWatermark(t *testing.T) {
	ctx := context.Background()
	id := createDevice(t, "Gate", true)
	watermark := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	if err := DBPool.SaveWatermark(ctx, id, watermark); err != nil {
		t.Fatalf("SaveWatermark failed: %v", err)
	}
	dev, err := DBPool.LoadDevice(ctx, id)
	if err != nil {
		t.Fatalf("LoadDevice failed: %v", err)
	}
	if dev.LastPollTime == nil || !dev.LastPollTime.Equal(watermark) {
		t.Fatalf("expected watermark %v, got %v", watermark, dev.LastPollTime)
	}

	// An older watermark must not move it backwards.
	if err := DBPool.SaveWatermark(ctx, id, watermark.Add(-time.Hour)); err != nil {
		t.Fatalf("SaveWatermark failed: %v", err)
	}
	dev, err = DBPool.LoadDevice(ctx, id)
	if err != nil {
		t.Fatalf("LoadDevice failed: %v", err)
	}
	if !dev.LastPollTime.Equal(watermark) {
		t.Fatalf("watermark moved backwards to %v", dev.LastPollTime)
	}
}

func TestSaveWatermarkUnknownDevice(t *testing.T) {
	err := DBPool.SaveWatermark(context.Background(), 999999, time.Now())
	if err == nil {
		t.Fatal("expected error for unknown device")
	}
}

func TestCreateRecord(t *testing.T) {
	ctx := context.Background()
	created, err := DBPool.CreateRecord(ctx, AttendanceRecord{
		EmployeeCode: "E-100",
		DeviceID:     1,
		EventType:    "IN",
		EventTime:    time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		Verified:     true,
		RawData:      []byte(`{"employeeNoString":"E-100"}`),
	})
	if err != nil {
		t.Fatalf("CreateRecord failed: %v", err)
	}
	if created.ID == "" || created.Version != 1 {
		t.Fatalf("unexpected record: %+v", created)
	}

	var count int
	err = DBPool.pool.QueryRow(ctx, `
			SELECT COUNT(*) FROM attendance_records WHERE id = $1
		`, created.ID).Scan(&count)
	if err != nil {
		t.Fatalf("counting records: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 record, got %d", count)
	}
}

func TestTokensFor(t *testing.T) {
	ctx := context.Background()
	_, err := DBPool.pool.Exec(ctx, `
			INSERT INTO push_tokens (employee_code, token, platform)
			VALUES ('E-200', 'tok-1', 'fcm'), ('E-200', 'tok-2', 'apns')
		`)
	if err != nil {
		t.Fatalf("inserting tokens: %v", err)
	}

	tokens, err := DBPool.TokensFor(ctx, "E-200")
	if err != nil {
		t.Fatalf("TokensFor failed: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}

	none, err := DBPool.TokensFor(ctx, "E-999")
	if err != nil {
		t.Fatalf("TokensFor failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no tokens, got %v", none)
	}
}
