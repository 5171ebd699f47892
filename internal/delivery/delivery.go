// Package delivery contains the outer surfaces of the application.
package delivery

import "context"

// Delivery is a long-running surface started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
