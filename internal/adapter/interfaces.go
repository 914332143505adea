// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's view of the go-qr-forge server.
//
// [ServerAdapter] hides the transport from the service layer. The HTTP
// implementation ([NewHTTPServerAdapter]) uses resty, sends the device id
// with every request and signs history uploads with HMAC-SHA256 when a hash
// key is configured. Non-2xx responses are mapped to the sentinel errors in
// errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-qr-forge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

type ServerAdapter interface {
	// PushHistory replaces the server-side history of this device.
	PushHistory(ctx context.Context, entries []models.HistoryEntry) error

	// Version reports the server version. The client uses it to show
	// whether the server is reachable.
	Version(ctx context.Context) (string, error)
}
