package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Intent is the operation a voice command asks for.
type Intent string

const (
	IntentCreate Intent = "create"
	IntentRead   Intent = "read"
	IntentUpdate Intent = "update"
	IntentDelete Intent = "delete"
	IntentList   Intent = "list"
	IntentFilter Intent = "filter"
)

// IntentRecord is the normalized form of one parsed command. Empty strings and a
// nil TaskIndex mean the field was not given.
type IntentRecord struct {
	Intent        Intent   `json:"intent"`
	TaskTitle     string   `json:"taskTitle,omitempty"`
	TaskID        string   `json:"taskId,omitempty"`
	TaskIndex     *int     `json:"taskIndex,omitempty"`
	Category      string   `json:"category,omitempty"`
	Priority      Priority `json:"priority,omitempty"`
	ScheduledTime string   `json:"scheduledTime,omitempty"`
	SearchQuery   string   `json:"searchQuery,omitempty"`
}

// ErrInvalidTaskIndex is returned when taskIndex is neither an integer nor an
// integer-valued string.
var ErrInvalidTaskIndex = errors.New("taskIndex is not an integer")

// UnmarshalJSON accepts taskIndex as 4, 4.0 or "4". Models are not consistent
// about the type they emit for it. Priority is lower-cased.
func (r *IntentRecord) UnmarshalJSON(data []byte) error {
	type plain IntentRecord
	var raw struct {
		plain
		TaskIndex json.RawMessage `json:"taskIndex"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = IntentRecord(raw.plain)
	r.TaskIndex = nil
	r.Priority = Priority(strings.ToLower(strings.TrimSpace(string(r.Priority))))

	idx, ok, err := parseTaskIndex(raw.TaskIndex)
	if err != nil {
		return err
	}
	if ok {
		r.TaskIndex = &idx
	}
	return nil
}

func parseTaskIndex(raw json.RawMessage) (int, bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false, nil
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, false, fmt.Errorf("%w: %v", ErrInvalidTaskIndex, err)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return 0, false, nil
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false, fmt.Errorf("%w: %s", ErrInvalidTaskIndex, raw)
	}
	return int(f), true, nil
}

// Index returns the task index and whether it was given.
func (r IntentRecord) Index() (int, bool) {
	if r.TaskIndex == nil {
		return 0, false
	}
	return *r.TaskIndex, true
}

// IntPtr is a small helper for building records in code.
func IntPtr(i int) *int {
	return &i
}
