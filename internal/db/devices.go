package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"
)

var (
	ErrSelectFailed = errors.New("select operation failed")
	ErrUpdateFailed = errors.New("update operation failed")
	ErrNotFound     = errors.New("row not found")
)

func (db *DB) ListActiveDevices(ctx context.Context) ([]DeviceConfig, error) {
	const fn = "DB:ListActiveDevices"
	var devices []DeviceConfig
	err := pgxscan.Select(ctx, db.pool, &devices, `
			SELECT
				id,
				name,
				host,
				username,
				password,
				poll_interval_seconds,
				last_poll_time,
				is_active,
				updated_at
			FROM device_configs
			WHERE is_active = TRUE
			ORDER BY id ASC
		`)
	if err != nil {
		if err == pgx.ErrNoRows {
			return []DeviceConfig{}, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return devices, nil
}

// LoadDevice reads the device row fresh. Pollers call this at the start of
// every cycle instead of caching the config, so a watermark written by another
// process is always observed.
func (db *DB) LoadDevice(ctx context.Context, id int64) (DeviceConfig, error) {
	const fn = "DB:LoadDevice"
	var device DeviceConfig
	err := pgxscan.Get(ctx, db.pool, &device, `
			SELECT
				id,
				name,
				host,
				username,
				password,
				poll_interval_seconds,
				last_poll_time,
				is_active,
				updated_at
			FROM device_configs
			WHERE id = $1
		`, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return DeviceConfig{}, fmt.Errorf("%s:%w:%w", fn, ErrNotFound, err)
		}
		return DeviceConfig{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return device, nil
}

// SaveWatermark advances last_poll_time for a device. GREATEST keeps the
// column monotonic even if two cycles race.
func (db *DB) SaveWatermark(ctx context.Context, id int64, watermark time.Time) error {
	const fn = "DB:SaveWatermark"
	tag, err := db.pool.Exec(ctx, `
			UPDATE device_configs
			SET last_poll_time = GREATEST(COALESCE(last_poll_time, 'epoch'::timestamptz), $2),
				updated_at = now()
			WHERE id = $1
		`, id, watermark)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w: device %d", fn, ErrNotFound, id)
	}
	return nil
}
