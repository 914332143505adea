package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-qr-forge/internal/render"
	"github.com/MKhiriev/go-qr-forge/internal/service"
	"github.com/MKhiriev/go-qr-forge/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid payload", &service.InvalidPayloadError{Message: "Please enter a URL"}, http.StatusUnprocessableEntity},
		{"wrapped render options", fmt.Errorf("%w: size", service.ErrInvalidRenderOptions), http.StatusBadRequest},
		{"history import", service.ErrInvalidHistoryImport, http.StatusBadRequest},
		{"history entry", service.ErrHistoryEntryNotFound, http.StatusNotFound},
		{"store history entry", fmt.Errorf("delete: %w", store.ErrHistoryEntryNotFound), http.StatusNotFound},
		{"template", service.ErrTemplateNotFound, http.StatusNotFound},
		{"share disabled", service.ErrShareDisabled, http.StatusNotImplemented},
		{"share token", fmt.Errorf("%w: expired", service.ErrShareTokenInvalid), http.StatusForbidden},
		{"too long", render.ErrContentTooLong, http.StatusUnprocessableEntity},
		{"sql", fmt.Errorf("%w: boom", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"unknown", errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
