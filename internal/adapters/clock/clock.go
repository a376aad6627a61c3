package clock

import "time"

// System is the wall clock used outside tests.
type System struct{}

// NewSystem creates the system clock
func NewSystem() *System {
	return &System{}
}

// Now returns the current wall time.
func (*System) Now() time.Time {
	return time.Now()
}
