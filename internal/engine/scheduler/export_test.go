package scheduler

import "time"

// SetClock replaces the clock stamping build info.
func (s *Scheduler) SetClock(now func() time.Time) {
	s.now = now
}
