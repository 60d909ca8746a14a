package clock

import "time"

// Clock supplies the current instant. The attendance engine never calls
// time.Now directly so tests can pin the scan time.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// New returns a Clock backed by the system wall clock.
func New() Clock {
	return realClock{}
}

// Fixed is a Clock that always reports the same instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}
