package models

import "time"

// Session owns the counter's only state: the instant at which elapsed time
// reads zero. All mutation happens on the UI event context, so no locking.
type Session struct {
	clock Clock
	start time.Time
}

// Span is one completed stretch of counting, closed out when the user
// resets the timer or the window shuts.
type Span struct {
	StartedAt time.Time
	EndedAt   time.Time
	Seconds   int64
}

// NewSession starts a session with the given head start in seconds. The
// start instant is set once here and only Reset may overwrite it.
func NewSession(clock Clock, offset int64) *Session {
	return &Session{
		clock: clock,
		start: StartInstant(clock.Now(), offset),
	}
}

// Start returns the current start instant.
func (s *Session) Start() time.Time { return s.start }

// Elapsed returns the whole seconds counted so far.
func (s *Session) Elapsed() int64 {
	return ElapsedSeconds(s.clock.Now(), s.start)
}

// Snapshot returns the breakdown for the current instant. Repeated calls
// with no real time in between produce identical results.
func (s *Session) Snapshot() Breakdown {
	return Split(s.Elapsed())
}

// Reset zeroes the counter and returns the span it just closed out so the
// caller can record it.
func (s *Session) Reset() Span {
	now := s.clock.Now()
	span := Span{
		StartedAt: s.start,
		EndedAt:   now,
		Seconds:   ElapsedSeconds(now, s.start),
	}
	s.start = now
	return span
}
