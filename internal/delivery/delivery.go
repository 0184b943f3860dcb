// Package delivery defines the contract for inbound transports.
package delivery

import "context"

// Delivery is a transport that serves requests until its context ends or
// the server is shut down through the lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
