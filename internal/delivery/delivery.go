// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is one serving surface of the application (HTTP API, reminder
// sweeper). Serve blocks until the surface stops; shutdown is handled by
// lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
