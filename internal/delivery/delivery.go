// Package delivery defines the contract every transport-facing server implements.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
// Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
