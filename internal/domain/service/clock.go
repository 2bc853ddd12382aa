package service

import "time"

// Clock abstracts wall-clock time so expiry logic is testable.
type Clock interface {
	Now() time.Time
}
