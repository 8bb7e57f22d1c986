package server

// Server defines the lifecycle of the transport servers managed by this
// package.
type Server interface {
	// RunServer starts serving and blocks until a stop signal arrives and
	// every server has shut down.
	RunServer()

	// Shutdown gracefully stops the servers.
	Shutdown()
}
