package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentRecordUnmarshalTaskIndex(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *int
		wantErr bool
	}{
		{name: "integer", body: `{"intent":"delete","taskIndex":4}`, want: IntPtr(4)},
		{name: "integral float", body: `{"intent":"delete","taskIndex":4.0}`, want: IntPtr(4)},
		{name: "numeric string", body: `{"intent":"delete","taskIndex":"4"}`, want: IntPtr(4)},
		{name: "zero kept for the caller to reject", body: `{"intent":"delete","taskIndex":0}`, want: IntPtr(0)},
		{name: "absent", body: `{"intent":"delete"}`, want: nil},
		{name: "null", body: `{"intent":"delete","taskIndex":null}`, want: nil},
		{name: "blank string", body: `{"intent":"delete","taskIndex":"  "}`, want: nil},
		{name: "fraction", body: `{"intent":"delete","taskIndex":2.5}`, wantErr: true},
		{name: "word", body: `{"intent":"delete","taskIndex":"fourth"}`, wantErr: true},
		{name: "bool", body: `{"intent":"delete","taskIndex":true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec IntentRecord
			err := json.Unmarshal([]byte(tt.body), &rec)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTaskIndex)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, IntentDelete, rec.Intent)
			assert.Equal(t, tt.want, rec.TaskIndex)
		})
	}
}

func TestIntentRecordUnmarshalFields(t *testing.T) {
	body := `{"intent":"update","taskTitle":"Ship","taskId":"abc","category":"work","priority":"high","scheduledTime":"2024-05-02","searchQuery":"release"}`

	var rec IntentRecord
	require.NoError(t, json.Unmarshal([]byte(body), &rec))

	assert.Equal(t, IntentRecord{
		Intent:        IntentUpdate,
		TaskTitle:     "Ship",
		TaskID:        "abc",
		Category:      "work",
		Priority:      PriorityHigh,
		ScheduledTime: "2024-05-02",
		SearchQuery:   "release",
	}, rec)
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, PriorityLow.Valid())
	assert.True(t, PriorityMedium.Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("urgent").Valid())
	assert.False(t, Priority("").Valid())
}

func TestIntentRecordUnmarshalPriorityCase(t *testing.T) {
	tests := []struct {
		body string
		want Priority
	}{
		{body: `{"intent":"create","priority":"High"}`, want: PriorityHigh},
		{body: `{"intent":"create","priority":" LOW "}`, want: PriorityLow},
		{body: `{"intent":"create","priority":"medium"}`, want: PriorityMedium},
		{body: `{"intent":"create"}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var rec IntentRecord
			require.NoError(t, json.Unmarshal([]byte(tt.body), &rec))
			assert.Equal(t, tt.want, rec.Priority)
		})
	}
}
