package http

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
)

// maxDeviceIDLength bounds the X-Device-ID header; longer values are cut.
const maxDeviceIDLength = 128

// withDeviceID resolves the history owner from X-Device-ID. Requests without
// the header share the default owner.
func withDeviceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deviceID := strings.TrimSpace(r.Header.Get(models.HeaderDeviceID))
		if deviceID == "" {
			deviceID = models.DefaultDeviceID
		}
		if len(deviceID) > maxDeviceIDLength {
			deviceID = deviceID[:maxDeviceIDLength]
		}

		ctx := utils.WithDeviceID(r.Context(), deviceID)

		l := logger.FromContext(ctx)
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("device_id", deviceID)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

// ownerFromRequest returns the device id set by withDeviceID.
func ownerFromRequest(r *http.Request) string {
	if deviceID, ok := utils.GetDeviceIDFromContext(r.Context()); ok {
		return deviceID
	}
	return models.DefaultDeviceID
}
