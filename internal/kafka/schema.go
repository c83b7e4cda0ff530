package kafka

import (
	"context"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// RecordCreated is the domain event published after an attendance record is
// committed, consumed asynchronously by the notification dispatcher.
type RecordCreated struct {
	RecordID     string    `json:"record_id"`
	EmployeeCode string    `json:"employee_code"`
	EventType    string    `json:"event_type"`
	EventTime    time.Time `json:"event_time"`
	DeviceName   string    `json:"device_name"`
}

type Reader interface {
	ReadMessage(ctx context.Context) (kafkago.Message, error)
	Close() error
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}
