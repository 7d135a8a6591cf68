package server

import "context"

// Server defines the lifecycle contract for the transport server.
type Server interface {
	// RunServer serves requests until ctx is done or SIGINT, SIGTERM or
	// SIGQUIT is received, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown(ctx context.Context) error
}
