package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-qr-forge/internal/app"
	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
)

// maxHashedBodySize caps the body read for signature checks.
const maxHashedBodySize = 4 << 20

// checkHash verifies the HashSHA256 header against the HMAC of the whole
// request body. Without a configured hash key every request passes.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(io.LimitReader(r.Body, maxHashedBodySize))
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			utils.WriteError(w, app.MsgReadBodyFailed, http.StatusInternalServerError)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		sum := r.Header.Get(models.HeaderHash)
		if sum == "" || !h.hasher.Equal(body, sum) {
			log.Error().Str("func", "*Handler.checkHash").
				Str("hash from request", sum).
				Msg("hashes are not equal")
			utils.WriteError(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
