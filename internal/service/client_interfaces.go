package service

import (
	"context"
	"time"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService uploads the local history to the server.
type ClientSyncService interface {
	// Push sends the whole local history of this device. The server replaces
	// its copy with it. Unchanged history since the last successful push is
	// not sent again.
	Push(ctx context.Context) error

	// ServerVersion asks the server for its version.
	ServerVersion(ctx context.Context) (string, error)
}

// ClientSyncJob periodically calls Push in the background.
type ClientSyncJob interface {
	// Start launches the background goroutine, stopping a previous one first.
	// A non-positive interval defaults to one minute.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the goroutine and waits until it has exited.
	Stop()
}
