// Package delivery defines the contract every transport surface satisfies.
package delivery

import "context"

// Delivery is a transport surface (HTTP server, worker, ...) managed by the
// application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
