// Package delivery defines the contract for transport-layer servers.
package delivery

import "context"

// Delivery is a transport server that accepts requests until its context is
// cancelled or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
