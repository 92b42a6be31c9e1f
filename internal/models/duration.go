package models

import (
	"fmt"
	"math"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
)

// Breakdown is the day/hour/minute/second decomposition of an
// elapsed-seconds count. Hours, minutes and seconds always fall in their
// natural ranges; only Days can be negative (see Split).
type Breakdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// ComputeOffset combines the two launch offsets into a single head start in
// whole seconds. Fractional hours are floored, so negative hour offsets
// round downward.
func ComputeOffset(offsetSeconds int64, offsetHours float64) int64 {
	return offsetSeconds + int64(math.Floor(offsetHours*secondsPerHour))
}

// StartInstant derives the instant at which elapsed time reads zero. A
// positive offset pushes the start into the past, pre-crediting time; a
// negative offset pushes it into the future.
func StartInstant(now time.Time, offset int64) time.Time {
	return now.Add(-time.Duration(offset) * time.Second)
}

// ElapsedSeconds returns the whole seconds between start and now, floored.
// No clamping: the result is negative while now precedes start.
func ElapsedSeconds(now, start time.Time) int64 {
	return int64(math.Floor(now.Sub(start).Seconds()))
}

// Split decomposes an elapsed-seconds count using floor division, so for
// negative input the sign lands entirely on the day field and the remaining
// fields stay in range (-5 seconds splits to day -1, 23:59:55).
func Split(elapsed int64) Breakdown {
	days := floorDiv(elapsed, secondsPerDay)
	rem := elapsed - days*secondsPerDay
	hours := rem / secondsPerHour
	rem %= secondsPerHour
	return Breakdown{
		Days:    days,
		Hours:   hours,
		Minutes: rem / secondsPerMinute,
		Seconds: rem % secondsPerMinute,
	}
}

// Format renders the breakdown as four zero-padded fields joined by colons,
// e.g. "00:05:07:42". Day counts wider than two digits expand naturally.
func (b Breakdown) Format() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", b.Days, b.Hours, b.Minutes, b.Seconds)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
