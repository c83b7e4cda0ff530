package device

import (
	"strconv"
	"time"
)

// RawEvent is one device-reported access occurrence as it travels through the
// queue: the untouched payload plus the identity of the device that reported
// it and the moment it entered the pipeline. Devices disagree on field names
// and casing, so reads go through ordered candidate extractors instead of
// fixed struct fields.
type RawEvent struct {
	DeviceID   int64          `json:"deviceId"`
	DeviceName string         `json:"deviceName"`
	ObservedAt time.Time      `json:"observedAt"`
	Fields     map[string]any `json:"fields"`
}

var employeeCandidates = []string{
	"employeeNoString",
	"employeeNo",
	"EmployeeNoString",
	"employeeCode",
	"userID",
	"personId",
}

var timeCandidates = []string{
	"time",
	"eventTime",
	"dateTime",
	"timestamp",
}

var imageCandidates = []string{
	"pictureURL",
	"imageUrl",
	"picUrl",
}

// eventTypeCodes maps vendor minor event codes to normalized event types.
// Anything unknown is treated as a check-in.
var eventTypeCodes = map[string]string{
	"1":  "IN",
	"2":  "OUT",
	"3":  "BREAK_START",
	"4":  "BREAK_END",
	"75": "IN",  // valid card swipe
	"76": "OUT", // valid card swipe, exit reader
}

const DefaultEventType = "IN"

func (e RawEvent) stringField(candidates []string) (string, bool) {
	for _, key := range candidates {
		v, ok := e.Fields[key]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case string:
			if val != "" {
				return val, true
			}
		case float64:
			return trimFloat(val), true
		}
	}
	return "", false
}

// EmployeeCode returns the employee identifier, or "" when the event carries
// none. Events without one are permanently invalid.
func (e RawEvent) EmployeeCode() string {
	code, _ := e.stringField(employeeCandidates)
	return code
}

// Timestamp parses the first populated time candidate, falling back to the
// moment the event entered the pipeline.
func (e RawEvent) Timestamp() time.Time {
	raw, ok := e.stringField(timeCandidates)
	if !ok {
		return e.ObservedAt
	}
	for _, layout := range []string{timeLayout, time.RFC3339, "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return e.ObservedAt
}

// EventType coalesces the vendor event code through the lookup table.
func (e RawEvent) EventType() string {
	code, ok := e.stringField([]string{"eventType", "subEventType", "minor", "attendanceStatus"})
	if !ok {
		return DefaultEventType
	}
	if normalized, ok := eventTypeCodes[code]; ok {
		return normalized
	}
	// Some devices already report the normalized name.
	switch code {
	case "IN", "OUT", "BREAK_START", "BREAK_END":
		return code
	}
	return DefaultEventType
}

func (e RawEvent) ImageURL() string {
	url, _ := e.stringField(imageCandidates)
	return url
}

func trimFloat(v float64) string {
	// Device payloads decode numeric ids as float64; they are always whole.
	return strconv.FormatInt(int64(v), 10)
}
