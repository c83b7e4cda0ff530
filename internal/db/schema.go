package db

import "time"

type DeviceConfig struct {
	ID                  int64      `db:"id"`
	Name                string     `db:"name"`
	Host                string     `db:"host"`
	Username            string     `db:"username"`
	Password            string     `db:"password"`
	PollIntervalSeconds int        `db:"poll_interval_seconds"`
	LastPollTime        *time.Time `db:"last_poll_time"`
	IsActive            bool       `db:"is_active"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

type AttendanceRecord struct {
	ID           string    `db:"id"`
	EmployeeCode string    `db:"employee_code"`
	DeviceID     int64     `db:"device_id"`
	EventType    string    `db:"event_type"`
	EventTime    time.Time `db:"event_time"`
	ImageURL     *string   `db:"image_url"`
	Verified     bool      `db:"verified"`
	RawData      []byte    `db:"raw_data"`
	Version      int       `db:"version"`
	CreatedAt    time.Time `db:"created_at"`
}

type PushToken struct {
	EmployeeCode string    `db:"employee_code"`
	Token        string    `db:"token"`
	Platform     string    `db:"platform"`
	CreatedAt    time.Time `db:"created_at"`
}
