package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInsertFailed = errors.New("insert operation failed")

// CreateRecord persists one normalized attendance record and returns it with
// its generated id. Duplicate events produce duplicate rows; dedup is the
// consumer's concern.
func (db *DB) CreateRecord(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error) {
	const fn = "DB:CreateRecord"
	record.ID = uuid.NewString()
	record.Version = 1
	record.CreatedAt = time.Now().UTC()
	_, err := db.pool.Exec(ctx, `
			INSERT INTO attendance_records (
				id,
				employee_code,
				device_id,
				event_type,
				event_time,
				image_url,
				verified,
				raw_data,
				version,
				created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`,
		record.ID,
		record.EmployeeCode,
		record.DeviceID,
		record.EventType,
		record.EventTime,
		record.ImageURL,
		record.Verified,
		record.RawData,
		record.Version,
		record.CreatedAt,
	)
	if err != nil {
		return AttendanceRecord{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return record, nil
}
