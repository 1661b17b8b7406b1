package store

import (
	"encoding/json"
	"fmt"

	"github.com/jurnalguru/jurnal/internal/journal"
)

// marshalHours converts the hours slice to JSON TEXT for storage.
// The slice is already normalized (ascending, duplicate-free) by the
// caller, so the stored form is deterministic.
func marshalHours(hours []int) (string, error) {
	if hours == nil {
		hours = []int{}
	}
	data, err := json.Marshal(hours)
	if err != nil {
		return "", fmt.Errorf("marshal hours: %w", err)
	}
	return string(data), nil
}

// marshalAttendance converts attendance records to JSON TEXT.
func marshalAttendance(records []journal.AttendanceRecord) (string, error) {
	if records == nil {
		records = []journal.AttendanceRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal attendance: %w", err)
	}
	return string(data), nil
}

func unmarshalHours(data string) ([]int, error) {
	if data == "" {
		return []int{}, nil
	}
	var hours []int
	if err := json.Unmarshal([]byte(data), &hours); err != nil {
		return nil, fmt.Errorf("unmarshal hours: %w", err)
	}
	if hours == nil {
		hours = []int{}
	}
	return hours, nil
}

func unmarshalAttendance(data string) ([]journal.AttendanceRecord, error) {
	if data == "" {
		return []journal.AttendanceRecord{}, nil
	}
	var records []journal.AttendanceRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("unmarshal attendance: %w", err)
	}
	if records == nil {
		records = []journal.AttendanceRecord{}
	}
	return records, nil
}

// marshalConfig serializes a profile document for a singleton container.
func marshalConfig(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(data), nil
}

func unmarshalConfig(data string, v any) error {
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}
