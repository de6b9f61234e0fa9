package utils

import "time"

// TimeProvider is the clock used for notification timestamps, trash countdowns and session expiry
type TimeProvider interface {
	Now() time.Time
}

// NewTimeProvider returns the wall clock
func NewTimeProvider() TimeProvider {
	return wallClock{}
}

type wallClock struct{}

func (wallClock) Now() time.Time {
	return time.Now()
}
