package device

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_RawEvent_EmployeeCode(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]any
		want   string
	}{
		{
			name:   "primary candidate",
			fields: map[string]any{"employeeNoString": "E-100"},
			want:   "E-100",
		},
		{
			name:   "earlier candidate wins",
			fields: map[string]any{"employeeCode": "later", "employeeNo": "E-2"},
			want:   "E-2",
		},
		{
			name:   "numeric id decoded as float64",
			fields: map[string]any{"employeeNo": float64(4711)},
			want:   "4711",
		},
		{
			name:   "empty string skipped for next candidate",
			fields: map[string]any{"employeeNoString": "", "userID": "U-9"},
			want:   "U-9",
		},
		{
			name:   "missing",
			fields: map[string]any{"unrelated": "x"},
			want:   "",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			event := RawEvent{Fields: tt.fields}
			assert.Equal(t, tt.want, event.EmployeeCode())
		})
	}
}

func Test_RawEvent_Timestamp(t *testing.T) {
	observed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		fields map[string]any
		want   time.Time
	}{
		{
			name:   "device layout with offset",
			fields: map[string]any{"time": "2024-05-01T08:30:00+03:00"},
			want:   time.Date(2024, 5, 1, 8, 30, 0, 0, time.FixedZone("", 3*3600)),
		},
		{
			name:   "space separated layout",
			fields: map[string]any{"dateTime": "2024-05-01 08:30:00"},
			want:   time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC),
		},
		{
			name:   "unparseable falls back to observed",
			fields: map[string]any{"time": "yesterday-ish"},
			want:   observed,
		},
		{
			name:   "absent falls back to observed",
			fields: map[string]any{},
			want:   observed,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			event := RawEvent{ObservedAt: observed, Fields: tt.fields}
			assert.True(t, tt.want.Equal(event.Timestamp()), "got %s", event.Timestamp())
		})
	}
}

func Test_RawEvent_EventType(t *testing.T) {
	cases := []struct {
		name   string
		fields map[string]any
		want   string
	}{
		{name: "coded check-in", fields: map[string]any{"eventType": "1"}, want: "IN"},
		{name: "coded check-out", fields: map[string]any{"eventType": "2"}, want: "OUT"},
		{name: "card swipe minor code", fields: map[string]any{"minor": float64(75)}, want: "IN"},
		{name: "already normalized", fields: map[string]any{"attendanceStatus": "BREAK_END"}, want: "BREAK_END"},
		{name: "unknown code defaults", fields: map[string]any{"eventType": "999"}, want: "IN"},
		{name: "absent defaults", fields: map[string]any{}, want: "IN"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			event := RawEvent{Fields: tt.fields}
			assert.Equal(t, tt.want, event.EventType())
		})
	}
}

func Test_RawEvent_ImageURL(t *testing.T) {
	event := RawEvent{Fields: map[string]any{"pictureURL": "http://device/pic/1.jpg"}}
	assert.Equal(t, "http://device/pic/1.jpg", event.ImageURL())

	assert.Empty(t, RawEvent{Fields: map[string]any{}}.ImageURL())
}
