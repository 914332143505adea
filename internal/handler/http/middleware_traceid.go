package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
)

// withTraceID attaches a request-scoped logger carrying trace_id. An
// incoming X-Trace-ID is reused, otherwise a new one is generated. The id is
// echoed back in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(models.HeaderTraceID)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(models.HeaderTraceID, traceID)
		next.ServeHTTP(w, r)
	})
}
