package trial

import "time"

// Timestamp is a point in time in milliseconds on a monotonic clock.
type Timestamp int64

// Duration converts a millisecond count to a time.Duration.
func (t Timestamp) Duration() time.Duration {
	return time.Duration(t) * time.Millisecond
}

// Clock supplies timestamps for key presses.
type Clock interface {
	Now() Timestamp
}

// MonotonicClock measures milliseconds since it was created.
type MonotonicClock struct {
	origin time.Time
}

// NewMonotonicClock returns a clock starting at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{origin: time.Now()}
}

// Now implements Clock. time.Since uses the monotonic reading of origin.
func (c *MonotonicClock) Now() Timestamp {
	return Timestamp(time.Since(c.origin).Milliseconds())
}
