// Package utils holds small helpers shared across go-qr-forge: typed context
// keys, hashing, identifiers, share tokens, JSON responses, the resty client
// and relative time formatting.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// DeviceIDCtxKey stores the history owner resolved from the X-Device-ID
// header.
var DeviceIDCtxKey = contextKey("deviceID")

// WithDeviceID returns a copy of ctx carrying deviceID.
func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, DeviceIDCtxKey, deviceID)
}

// GetDeviceIDFromContext returns the device id stored in ctx, if any.
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	return deviceID, ok && deviceID != ""
}
