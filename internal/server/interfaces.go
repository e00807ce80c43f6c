package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops
	// or the process receives a termination signal.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
