package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/models"
)

// renderQR renders the payload in the requested format. With save set the
// payload is also added to the caller's history and the new entry id is
// returned in X-History-ID.
func (h *Handler) renderQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RenderRequest
	if !decodeJSON(w, r, &req, "*Handler.renderQR") {
		return
	}

	rendered, err := h.services.RenderService.Render(ctx, req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.renderQR")
		return
	}

	if req.Save {
		entry, err := h.services.HistoryService.Add(ctx, ownerFromRequest(r), req.TypedData)
		if err != nil {
			writeServiceError(w, r, err, "*Handler.renderQR")
			return
		}
		w.Header().Set(models.HeaderHistoryID, entry.ID)
	}

	writeRendered(w, r, rendered)
}

func writeRendered(w http.ResponseWriter, r *http.Request, rendered models.Rendered) {
	w.Header().Set("Content-Type", rendered.Format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", rendered.Format.FileName()))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(rendered.Content); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeRendered").Msg("failed to write rendered QR")
	}
}
