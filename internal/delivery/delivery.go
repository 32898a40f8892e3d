// Package delivery defines the contract every transport implementation fulfils.
package delivery

import "context"

// Delivery is a serving surface of the application (HTTP today).
type Delivery interface {
	Serve(ctx context.Context) error
}
