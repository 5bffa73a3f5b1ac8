// Package clock abstracts wall-clock access so time-driven behavior
// (timestamps, the overdue sweep) is deterministically testable.
package clock

import "time"

// Clock provides the current time. The core never reads time.Now
// directly; it is always injected.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by the real wall clock, in UTC.
type System struct{}

// Now returns the current UTC time.
func (System) Now() time.Time { return time.Now().UTC() }

// Fixed is a Clock pinned to a single instant. Tests advance it by
// replacing the value.
type Fixed struct {
	Time time.Time
}

// Now returns the pinned instant.
func (f Fixed) Now() time.Time { return f.Time }
