package auth

import (
	"time"

	"gamevault/internal/domain/service"
)

// systemClock reads the wall clock.
type systemClock struct{}

// NewSystemClock is the constructor for systemClock.
func NewSystemClock() service.Clock {
	return &systemClock{}
}

func (c *systemClock) Now() time.Time {
	return time.Now()
}
