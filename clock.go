package httpdt

import "time"

// Clock provides the current time. It is the only source of wall clock
// readings for New and Datetime.Now.
type Clock interface {
	Now() time.Time
}

// SystemClock uses the system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to the Clock interface.
// A nil ClockFunc reports the zero time, which New rejects.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	if f == nil {
		return time.Time{}
	}
	return f()
}

// fixedClock always returns the same time, useful for testing.
type fixedClock struct {
	time time.Time
}

func (c fixedClock) Now() time.Time {
	return c.time
}

// FixedClock returns a Clock that always returns the same time.
// This is useful for testing to ensure deterministic timestamps.
func FixedClock(t time.Time) Clock {
	return fixedClock{time: t}
}
