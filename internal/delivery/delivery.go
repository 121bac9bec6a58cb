// Package delivery holds the transports that expose the usecases: the REST API,
// the server-rendered web pages and the notification worker.
package delivery

import "context"

// Delivery is a long-running server started by a cmd entry point.
type Delivery interface {
	// Serve blocks until the server stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}
