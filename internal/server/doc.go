// Package server runs the HTTP and gRPC transports of the QR forge server
// and stops them gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
