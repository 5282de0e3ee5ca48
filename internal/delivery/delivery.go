// Package delivery holds the inbound transports of the gateway.
package delivery

import "context"

// Delivery is a transport that serves until it is stopped through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
