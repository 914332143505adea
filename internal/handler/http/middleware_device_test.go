package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-qr-forge/models"
)

func TestWithDeviceID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "header is used", header: "laptop-7", want: "laptop-7"},
		{name: "surrounding space trimmed", header: "  laptop-7 ", want: "laptop-7"},
		{name: "missing header falls back", header: "", want: models.DefaultDeviceID},
		{name: "blank header falls back", header: "   ", want: models.DefaultDeviceID},
		{name: "long header is cut", header: strings.Repeat("d", 300), want: strings.Repeat("d", maxDeviceIDLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = ownerFromRequest(r)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(models.HeaderDeviceID, tt.header)
			}

			withDeviceID(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOwnerFromRequest_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Equal(t, models.DefaultDeviceID, ownerFromRequest(req))
}
