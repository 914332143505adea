package http

import (
	"net/http"

	"github.com/MKhiriev/go-qr-forge/models"
)

// encodePayload always answers 200: validation failures travel inside the
// EncodeResult.
func (h *Handler) encodePayload(w http.ResponseWriter, r *http.Request) {
	var typed models.TypedData
	if !decodeJSON(w, r, &typed, "*Handler.encodePayload") {
		return
	}

	result := h.services.PayloadService.Encode(r.Context(), typed)
	writeJSON(w, r, result, http.StatusOK, "*Handler.encodePayload")
}

func (h *Handler) detectPayload(w http.ResponseWriter, r *http.Request) {
	var req models.DetectRequest
	if !decodeJSON(w, r, &req, "*Handler.detectPayload") {
		return
	}

	result := h.services.PayloadService.Detect(r.Context(), req.Text)
	writeJSON(w, r, result, http.StatusOK, "*Handler.detectPayload")
}
