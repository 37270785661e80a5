package utils

import (
	"time"
)

// Clock is the time source of the components stamping events, replaceable in tests
type Clock interface {
	// Now returns current time
	Now() time.Time
}

// SystemClock is the default Clock
type SystemClock struct{}

// Now returns current time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same time
type FixedClock struct {
	FixedTime time.Time
}

// Now returns the fixed time
func (c FixedClock) Now() time.Time {
	return c.FixedTime
}
