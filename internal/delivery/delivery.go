// Package delivery defines the contract every transport adapter fulfils.
package delivery

import "context"

// Delivery is a serving surface of the application. The HTTP server is the
// only implementation today; the interface keeps main agnostic of transport.
type Delivery interface {
	// Serve blocks until the server stops or fails to start.
	Serve(ctx context.Context) error
}
