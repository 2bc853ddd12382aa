// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running server (HTTP today) started by the application
// entrypoint. Implementations register their own shutdown via fx hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
