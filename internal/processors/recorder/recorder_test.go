package recorder

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"attendance-ingest/internal/db"
	"attendance-ingest/internal/device"
	"attendance-ingest/internal/queue"

	k "attendance-ingest/internal/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRecorder(q eventQueue, store recordStore, writer k.Writer) *Recorder {
	return &Recorder{
		queue:       q,
		store:       store,
		writer:      writer,
		maxRetries:  3,
		popTimeout:  time.Second,
		backoffBase: time.Millisecond,
	}
}

func testItem(t *testing.T, fields map[string]any) *queue.Item {
	t.Helper()
	payload, err := json.Marshal(device.RawEvent{
		DeviceID:   7,
		DeviceName: "Main Entrance",
		ObservedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Fields:     fields,
	})
	require.NoError(t, err)
	return &queue.Item{ID: 42, Queue: queue.Events, Payload: payload}
}

func Test_ProcessMessage_PersistsAndEmits(t *testing.T) {
	item := testItem(t, map[string]any{
		"employeeNoString": "E-100",
		"time":             "2024-05-01T09:59:00+00:00",
		"eventType":        "2",
		"pictureURL":       "http://device/pic.jpg",
	})

	q := NewMockeventQueue(t)
	store := NewMockrecordStore(t)
	writer := k.NewMockWriter(t)

	q.EXPECT().PopBlocking(mock.Anything, time.Second).Return(item, nil).Once()
	store.EXPECT().CreateRecord(mock.Anything, mock.MatchedBy(func(record db.AttendanceRecord) bool {
		return record.EmployeeCode == "E-100" &&
			record.DeviceID == 7 &&
			record.EventType == "OUT" &&
			record.Verified &&
			record.ImageURL != nil
	})).RunAndReturn(func(_ context.Context, record db.AttendanceRecord) (db.AttendanceRecord, error) {
		record.ID = "rec-1"
		return record, nil
	}).Once()
	var emitted k.RecordCreated
	writer.EXPECT().WriteMessages(mock.Anything, mock.Anything).
		Run(func(_ context.Context, msgs ...kafkago.Message) {
			require.Len(t, msgs, 1)
			assert.Equal(t, []byte("E-100"), msgs[0].Key)
			require.NoError(t, json.Unmarshal(msgs[0].Value, &emitted))
		}).Return(nil).Once()
	q.EXPECT().Ack(mock.Anything, int64(42)).Return(nil).Once()

	r := newTestRecorder(q, store, writer)
	r.ProcessMessage(context.Background())

	assert.Equal(t, "rec-1", emitted.RecordID)
	assert.Equal(t, "E-100", emitted.EmployeeCode)
	assert.Equal(t, "OUT", emitted.EventType)
	assert.Equal(t, "Main Entrance", emitted.DeviceName)
}

func Test_ProcessMessage_PopTimeout(t *testing.T) {
	q := NewMockeventQueue(t)
	q.EXPECT().PopBlocking(mock.Anything, time.Second).Return(nil, nil).Once()

	r := newTestRecorder(q, NewMockrecordStore(t), k.NewMockWriter(t))
	r.ProcessMessage(context.Background())
}

func Test_ProcessMessage_MalformedPayloadAcked(t *testing.T) {
	item := &queue.Item{ID: 42, Queue: queue.Events, Payload: []byte("not json")}

	q := NewMockeventQueue(t)
	q.EXPECT().PopBlocking(mock.Anything, time.Second).Return(item, nil).Once()
	q.EXPECT().Ack(mock.Anything, int64(42)).Return(nil).Once()

	r := newTestRecorder(q, NewMockrecordStore(t), k.NewMockWriter(t))
	r.ProcessMessage(context.Background())
}

func Test_ProcessMessage_MissingEmployeeAcked(t *testing.T) {
	item := testItem(t, map[string]any{"time": "2024-05-01T09:59:00+00:00"})

	q := NewMockeventQueue(t)
	q.EXPECT().PopBlocking(mock.Anything, time.Second).Return(item, nil).Once()
	q.EXPECT().Ack(mock.Anything, int64(42)).Return(nil).Once()

	r := newTestRecorder(q, NewMockrecordStore(t), k.NewMockWriter(t))
	r.ProcessMessage(context.Background())
}

func Test_ProcessMessage_PersistExhausted_DeadLetters(t *testing.T) {
	item := testItem(t, map[string]any{"employeeNoString": "E-100"})

	q := NewMockeventQueue(t)
	store := NewMockrecordStore(t)

	q.EXPECT().PopBlocking(mock.Anything, time.Second).Return(item, nil).Once()
	store.EXPECT().CreateRecord(mock.Anything, mock.Anything).
		Return(db.AttendanceRecord{}, errors.New("connection refused")).Times(3)
	q.EXPECT().PushToDLQ(mock.Anything, item, mock.MatchedBy(func(err error) bool {
		return errors.Is(err, ErrPersist)
	}), 3).Return(nil).Once()

	r := newTestRecorder(q, store, k.NewMockWriter(t))
	r.ProcessMessage(context.Background())
}

func Test_ProcessMessage_PersistRecovers(t *testing.T) {
	item := testItem(t, map[string]any{"employeeNoString": "E-100"})

	q := NewMockeventQueue(t)
	store := NewMockrecordStore(t)
	writer := k.NewMockWriter(t)

	q.EXPECT().PopBlocking(mock.Anything, time.Second).Return(item, nil).Once()
	store.EXPECT().CreateRecord(mock.Anything, mock.Anything).
		Return(db.AttendanceRecord{}, errors.New("deadlock detected")).Twice()
	store.EXPECT().CreateRecord(mock.Anything, mock.Anything).
		Return(db.AttendanceRecord{ID: "rec-1", EmployeeCode: "E-100"}, nil).Once()
	writer.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(nil).Once()
	q.EXPECT().Ack(mock.Anything, int64(42)).Return(nil).Once()

	r := newTestRecorder(q, store, writer)
	r.ProcessMessage(context.Background())
}

func Test_ProcessMessage_EmitRetried_RecordCreatedOnce(t *testing.T) {
	item := testItem(t, map[string]any{"employeeNoString": "E-100"})

	q := NewMockeventQueue(t)
	store := NewMockrecordStore(t)
	writer := k.NewMockWriter(t)

	q.EXPECT().PopBlocking(mock.Anything, time.Second).Return(item, nil).Once()
	// Exactly one record even though the emit needs a second attempt.
	store.EXPECT().CreateRecord(mock.Anything, mock.Anything).
		Return(db.AttendanceRecord{ID: "rec-1", EmployeeCode: "E-100"}, nil).Once()
	writer.EXPECT().WriteMessages(mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).Once()
	writer.EXPECT().WriteMessages(mock.Anything, mock.Anything).Return(nil).Once()
	q.EXPECT().Ack(mock.Anything, int64(42)).Return(nil).Once()

	r := newTestRecorder(q, store, writer)
	r.ProcessMessage(context.Background())
}

func Test_ProcessMessage_EmitExhausted_AckedNotDeadLettered(t *testing.T) {
	item := testItem(t, map[string]any{"employeeNoString": "E-100"})

	q := NewMockeventQueue(t)
	store := NewMockrecordStore(t)
	writer := k.NewMockWriter(t)

	q.EXPECT().PopBlocking(mock.Anything, time.Second).Return(item, nil).Once()
	store.EXPECT().CreateRecord(mock.Anything, mock.Anything).
		Return(db.AttendanceRecord{ID: "rec-1", EmployeeCode: "E-100"}, nil).Once()
	writer.EXPECT().WriteMessages(mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).Times(3)
	// The record is committed: ack, never dead-letter.
	q.EXPECT().Ack(mock.Anything, int64(42)).Return(nil).Once()

	r := newTestRecorder(q, store, writer)
	r.ProcessMessage(context.Background())
}
