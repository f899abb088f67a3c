// Package delivery defines the contract every transport (HTTP, workers)
// fulfils so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport serving the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
