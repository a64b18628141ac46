// Package delivery defines the contract every delivery surface implements.
package delivery

import "context"

// Delivery is a long-running request surface, started by the application and
// stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
