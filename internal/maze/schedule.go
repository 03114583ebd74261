package maze

import "time"

// Schedule is a one-shot countdown driven by an external clock. The zero
// value is idle.
type Schedule struct {
	remaining time.Duration
	armed     bool
}

// Start arms the schedule to fire after d. A non-positive d fires on the
// next Advance.
func (s *Schedule) Start(d time.Duration) {
	s.remaining = max(d, 0)
	s.armed = true
}

// Cancel disarms the schedule.
func (s *Schedule) Cancel() {
	s.remaining = 0
	s.armed = false
}

// Armed reports whether the schedule is waiting to fire.
func (s *Schedule) Armed() bool { return s.armed }

// Remaining returns the time left before the schedule fires.
func (s *Schedule) Remaining() time.Duration { return s.remaining }

// Advance moves the clock forward by dt. It reports whether the schedule
// fired and how much of dt was left over after it did.
func (s *Schedule) Advance(dt time.Duration) (bool, time.Duration) {
	if !s.armed {
		return false, 0
	}
	if dt < s.remaining {
		s.remaining -= dt
		return false, 0
	}
	rest := dt - s.remaining
	s.Cancel()
	return true, rest
}
