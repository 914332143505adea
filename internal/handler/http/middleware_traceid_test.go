package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/models"
)

func executeWithTraceID(t *testing.T, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	h := &Handler{logger: logger.Nop()}

	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incoming != "" {
		req.Header.Set(models.HeaderTraceID, incoming)
	}
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "incoming id is reused", incoming: "my-trace", wantSame: true},
		{name: "uuid incoming id is reused", incoming: "550e8400-e29b-41d4-a716-446655440000", wantSame: true},
		{name: "missing id is generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, captured := executeWithTraceID(t, tt.incoming)

			require.NotNil(t, captured, "next handler must run")
			got := rec.Header().Get(models.HeaderTraceID)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "generated trace id must be a UUID")
		})
	}
}

func TestWithTraceID_AttachesLogger(t *testing.T) {
	_, captured := executeWithTraceID(t, "trace-1")

	require.NotNil(t, captured)
	assert.NotNil(t, logger.FromRequest(captured))
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	rec1, _ := executeWithTraceID(t, "")
	rec2, _ := executeWithTraceID(t, "")

	assert.NotEqual(t, rec1.Header().Get(models.HeaderTraceID), rec2.Header().Get(models.HeaderTraceID))
}
