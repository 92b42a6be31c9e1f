package models

import "time"

// Clock abstracts the wall clock so tests can advance time by hand.
type Clock interface {
	Now() time.Time
}

// RealClock reads the actual system time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
