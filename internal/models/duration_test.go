package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeOffset(t *testing.T) {
	tests := []struct {
		name          string
		offsetSeconds int64
		offsetHours   float64
		want          int64
	}{
		{"seconds only", 3600, 0.0, 3600},
		{"hours only", 0, 1.5, 5400},
		{"combined", 60, 0.5, 1860},
		{"zero", 0, 0.0, 0},
		{"negative seconds", -120, 0.0, -120},
		{"negative hours floor downward", 0, -1.5, -5400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeOffset(tt.offsetSeconds, tt.offsetHours))
		})
	}
}

func TestStartInstant(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(-time.Hour), StartInstant(now, 3600))
	assert.Equal(t, now, StartInstant(now, 0))
	assert.Equal(t, now.Add(10*time.Second), StartInstant(now, -10))
}

func TestElapsedSeconds(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(0), ElapsedSeconds(start, start))
	assert.Equal(t, int64(3661), ElapsedSeconds(start.Add(3661*time.Second), start))
	// Sub-second progress floors to the whole second below.
	assert.Equal(t, int64(1), ElapsedSeconds(start.Add(1900*time.Millisecond), start))
	// Negative elapsed is not clamped.
	assert.Equal(t, int64(-10), ElapsedSeconds(start.Add(-10*time.Second), start))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		elapsed int64
		want    Breakdown
	}{
		{0, Breakdown{0, 0, 0, 0}},
		{1, Breakdown{0, 0, 0, 1}},
		{59, Breakdown{0, 0, 0, 59}},
		{60, Breakdown{0, 0, 1, 0}},
		{3661, Breakdown{0, 1, 1, 1}},
		{86399, Breakdown{0, 23, 59, 59}},
		{86400, Breakdown{1, 0, 0, 0}},
		{90061, Breakdown{1, 1, 1, 1}},
		{123*86400 + 4*3600, Breakdown{123, 4, 0, 0}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Split(tt.elapsed), "elapsed=%d", tt.elapsed)
	}
}

func TestSplitFieldRangesAndRecompose(t *testing.T) {
	samples := []int64{0, 1, 59, 60, 61, 3599, 3600, 3661, 86399, 86400, 90061, 172800, 8639999, 10000000}

	for _, e := range samples {
		b := Split(e)
		assert.GreaterOrEqual(t, b.Hours, int64(0))
		assert.Less(t, b.Hours, int64(24))
		assert.GreaterOrEqual(t, b.Minutes, int64(0))
		assert.Less(t, b.Minutes, int64(60))
		assert.GreaterOrEqual(t, b.Seconds, int64(0))
		assert.Less(t, b.Seconds, int64(60))
		assert.Equal(t, e, b.Days*86400+b.Hours*3600+b.Minutes*60+b.Seconds, "recompose elapsed=%d", e)
	}
}

// Negative input uses floor division: the sign lands on the day field and
// the remaining fields stay in their natural ranges.
func TestSplitNegative(t *testing.T) {
	tests := []struct {
		elapsed int64
		want    Breakdown
	}{
		{-1, Breakdown{-1, 23, 59, 59}},
		{-5, Breakdown{-1, 23, 59, 55}},
		{-3600, Breakdown{-1, 23, 0, 0}},
		{-86400, Breakdown{-1, 0, 0, 0}},
		{-86401, Breakdown{-2, 23, 59, 59}},
	}

	for _, tt := range tests {
		b := Split(tt.elapsed)
		assert.Equal(t, tt.want, b, "elapsed=%d", tt.elapsed)
		assert.Equal(t, tt.elapsed, b.Days*86400+b.Hours*3600+b.Minutes*60+b.Seconds)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		elapsed int64
		want    string
	}{
		{0, "00:00:00:00"},
		{3661, "00:01:01:01"},
		{90061, "01:01:01:01"},
		{18462, "00:05:07:42"},
		{123*86400 + 4*3600, "123:04:00:00"},
		{-5, "-1:23:59:55"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Split(tt.elapsed).Format(), "elapsed=%d", tt.elapsed)
	}
}
