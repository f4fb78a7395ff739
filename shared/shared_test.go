package shared_test

import (
	"testing"
	"time"

	"pmsbridge/shared"

	"github.com/stretchr/testify/assert"
)

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{name: "first wins", input: []string{"a", "b"}, expected: "a"},
		{name: "skips blanks", input: []string{"", "  ", "c"}, expected: "c"},
		{name: "trims", input: []string{" d "}, expected: "d"},
		{name: "none", input: []string{"", ""}, expected: ""},
		{name: "no input", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.FirstNonEmpty(tt.input...))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{name: "date", input: "2024-03-01", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "timestamp keeps the calendar date", input: "2024-03-01T23:30:00-05:00", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "too short", input: "2024-3-1"},
		{name: "garbage", input: "not-a-date"},
		{name: "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := shared.ParseDate(tt.input)

			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestEpochMillis(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int64
		wantOK bool
	}{
		{name: "date", input: "2024-03-04", want: 1709510400000, wantOK: true},
		{name: "rfc3339", input: "2024-03-04T10:00:00Z", want: 1709546400000, wantOK: true},
		{name: "local timestamp", input: "2024-03-04T10:00:00", want: 1709546400000, wantOK: true},
		{name: "invalid", input: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := shared.EpochMillis(tt.input)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:10.0.0.1", shared.BuildCacheKey("limiter", "10.0.0.1"))
	assert.Equal(t, "sync:lock:ABC123", shared.BuildCacheKey("sync", "lock", "ABC123"))
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
}
