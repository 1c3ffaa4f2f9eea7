package common

import (
	"context"
	"time"
)

// DefaultShutdownTimeout bounds graceful server shutdown.
const DefaultShutdownTimeout = 15 * time.Second

// ShutdownContext returns a context for graceful shutdown with the default
// timeout.
func ShutdownContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), DefaultShutdownTimeout)
}
