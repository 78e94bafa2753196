// Package delivery defines the contract every transport entry point
// implements, so the application can start each one uniformly.
package delivery

import "context"

// Delivery is a serving transport, such as an HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
