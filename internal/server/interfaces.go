package server

// Server runs the HTTP and gRPC transports of the QR service.
type Server interface {
	// RunServer starts every configured transport and blocks until SIGTERM,
	// SIGINT or SIGQUIT arrives.
	RunServer()
	// Shutdown stops the transports. It is safe to call more than once.
	Shutdown()
}
