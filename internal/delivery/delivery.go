// Package delivery defines the contract every transport adapter fulfils.
package delivery

import "context"

// Delivery is a long-running transport server, e.g. the HTTP API.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
