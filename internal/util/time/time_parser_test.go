package time_parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ParseTimestamp_WithNilInput_ReturnsCurrentTime(t *testing.T) {
	before := time.Now().UTC()
	result := ParseTimestamp(nil)
	after := time.Now().UTC()

	assert.True(t, result.After(before.Add(-time.Second)) && result.Before(after.Add(time.Second)),
		"Expected result to be close to current time")
	assert.Equal(t, time.UTC, result.Location(), "Expected UTC timezone")
}

func Test_ParseTimestamp_WithEmptyString_ReturnsCurrentTime(t *testing.T) {
	before := time.Now().UTC()
	result := ParseTimestamp("")
	after := time.Now().UTC()

	assert.True(t, result.After(before.Add(-time.Second)) && result.Before(after.Add(time.Second)),
		"Expected result to be close to current time")
}

func Test_ParseTimestamp_WithValidISOStrings_ParsesCorrectly(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "RFC3339 format",
			input:    "2023-12-25T15:30:45Z",
			expected: time.Date(2023, 12, 25, 15, 30, 45, 0, time.UTC),
		},
		{
			name:     "RFC3339 with timezone",
			input:    "2023-12-25T15:30:45+02:00",
			expected: time.Date(2023, 12, 25, 13, 30, 45, 0, time.UTC),
		},
		{
			name:     "RFC3339Nano format",
			input:    "2023-12-25T15:30:45.123456789Z",
			expected: time.Date(2023, 12, 25, 15, 30, 45, 123456789, time.UTC),
		},
		{
			name:     "ISO without timezone",
			input:    "2023-12-25T15:30:45",
			expected: time.Date(2023, 12, 25, 15, 30, 45, 0, time.UTC),
		},
		{
			name:     "Space-separated format",
			input:    "2023-12-25 15:30:45",
			expected: time.Date(2023, 12, 25, 15, 30, 45, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseTimestamp(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func Test_ParseTimestamp_WithUnixNumbers_DistinguishesSecondsAndMilliseconds(t *testing.T) {
	seconds := float64(1703518245) // 2023-12-25T15:30:45Z
	result := ParseTimestamp(seconds)
	assert.Equal(t, time.Date(2023, 12, 25, 15, 30, 45, 0, time.UTC), result)

	millis := float64(1703518245123)
	result = ParseTimestamp(millis)
	assert.Equal(t, time.Date(2023, 12, 25, 15, 30, 45, 123000000, time.UTC), result)

	result = ParseTimestamp(int64(1703518245))
	assert.Equal(t, time.Date(2023, 12, 25, 15, 30, 45, 0, time.UTC), result)
}

func Test_ParseTimestamp_WithUnsupportedType_ReturnsCurrentTime(t *testing.T) {
	before := time.Now().UTC()
	result := ParseTimestamp(true)
	after := time.Now().UTC()

	assert.True(t, result.After(before.Add(-time.Second)) && result.Before(after.Add(time.Second)))
}

func Test_ParseQueryTime_WithValidInputs_ParsesCorrectly(t *testing.T) {
	result, err := ParseQueryTime("2023-12-25T15:30:45Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 25, 15, 30, 45, 0, time.UTC), result)

	result, err = ParseQueryTime("1703518245")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 25, 15, 30, 45, 0, time.UTC), result)

	result, err = ParseQueryTime("1703518245123")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 25, 15, 30, 45, 123000000, time.UTC), result)
}

func Test_ParseQueryTime_WithInvalidInput_ReturnsError(t *testing.T) {
	_, err := ParseQueryTime("not-a-timestamp")
	assert.Error(t, err)
}
