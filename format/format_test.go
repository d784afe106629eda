package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacentio/arbor/format"
)

var sample = time.Date(2024, time.March, 5, 9, 7, 3, 0, time.UTC)

func TestTime(t *testing.T) {
	tests := []struct {
		layout   string
		expected string
	}{
		{"", "2024-03-05 09:07:03"},
		{"{y}/{m}/{d}", "2024/03/05"},
		{"{h}h{i}m{s}s", "09h07m03s"},
		{"{yyyy}-{mm}", "2024-03"},
		{"{a}", "Tuesday"},
		{"no tokens {x}", "no tokens {x}"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, format.Time(sample, tt.layout), tt.layout)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected time.Time
	}{
		{"seconds", int64(1709629623), time.Unix(1709629623, 0)},
		{"seconds string", "1709629623", time.Unix(1709629623, 0)},
		{"milliseconds", int64(1709629623123), time.UnixMilli(1709629623123)},
		{"milliseconds string", "1709629623123", time.UnixMilli(1709629623123)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := format.ParseTimestamp(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %v", got)
		})
	}

	_, err := format.ParseTimestamp("yesterday")
	assert.ErrorIs(t, err, format.ErrTimestamp)
}

func TestRelative(t *testing.T) {
	tests := []struct {
		offset   time.Duration
		expected string
	}{
		{-10 * time.Second, "just now"},
		{-45 * time.Second, "45 seconds ago"},
		{-5 * time.Minute, "5 minutes ago"},
		{-3 * time.Hour, "3 hours ago"},
		{2 * time.Hour, "2 hours from now"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, format.Relative(sample.Add(tt.offset), sample))
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "0 days 0 hours 0 minutes 0 seconds", format.Duration(0))
	assert.Equal(t, "1 days 1 hours 1 minutes 1.5 seconds", format.Duration(90061500))
	assert.Equal(t, "0 days 2 hours 0 minutes 30 seconds", format.Duration(7230000))
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, "Sunday", format.Weekday(0))
	assert.Equal(t, "Saturday", format.Weekday(6))
	assert.Equal(t, "unknown", format.Weekday(7))
	assert.Equal(t, "unknown", format.Weekday(-1))
}

func TestMoney(t *testing.T) {
	tests := []struct {
		input    any
		expected string
	}{
		{"", ""},
		{"123", "123"},
		{"1234567", "1,234,567"},
		{int64(-98765), "-98,765"},
		{1234.5, "1,234.5"},
	}

	for _, tt := range tests {
		got, err := format.Money(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}

	_, err := format.Money("twelve")
	assert.Error(t, err)
}

func TestBytes(t *testing.T) {
	assert.Equal(t, "0 B", format.Bytes(0))
	assert.Equal(t, "500 B", format.Bytes(500))
	assert.Equal(t, "1.5 KiB", format.Bytes(1536))
	assert.Equal(t, "1.0 MiB", format.Bytes(1<<20))
}

func TestDays(t *testing.T) {
	midnight := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight, format.StartOfDay(sample))
	assert.Equal(t, midnight.AddDate(0, 0, -3), format.DaysFrom(sample, -3))
	assert.Equal(t, time.Date(2024, time.April, 4, 0, 0, 0, 0, time.UTC), format.DaysFrom(sample, 30))
}
