package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qr-forge/internal/app"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
	"github.com/MKhiriev/go-qr-forge/models"
)

func (h *Handler) issueShare(w http.ResponseWriter, r *http.Request) {
	var req models.ShareRequest
	if !decodeJSON(w, r, &req, "*Handler.issueShare") {
		return
	}

	resp, err := h.services.ShareService.Issue(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.issueShare")
		return
	}

	writeJSON(w, r, resp, http.StatusCreated, "*Handler.issueShare")
}

// resolveShare renders the QR code a share token points to. The format
// query parameter selects png (default) or svg.
func (h *Handler) resolveShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format := models.ExportFormat(r.URL.Query().Get("format"))
	switch format {
	case "":
		format = models.FormatPNG
	case models.FormatPNG, models.FormatSVG:
	default:
		utils.WriteError(w, app.MsgInvalidShareFormat, http.StatusBadRequest)
		return
	}

	shared, err := h.services.ShareService.Resolve(ctx, chi.URLParam(r, "token"))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.resolveShare")
		return
	}

	rendered, err := h.services.RenderService.RenderEncoded(ctx, shared.Encoded, shared.Options, format)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.resolveShare")
		return
	}

	w.Header().Set("Cache-Control", "private, max-age=300")
	writeRendered(w, r, rendered)
}
