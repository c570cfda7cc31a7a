package port

import "time"

// Clock is an interface to define how services read the current time
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface
type ClockFunc func() time.Time

// Now implements Clock by calling f
func (f ClockFunc) Now() time.Time {
	return f()
}
