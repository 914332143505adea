package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qr-forge/models"
)

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := models.TemplatesResponse{
		Templates: h.services.TemplateService.List(ctx),
		Presets:   h.services.TemplateService.Presets(ctx),
	}
	writeJSON(w, r, resp, http.StatusOK, "*Handler.listTemplates")
}

// applyTemplate encodes the template payload and returns it together with
// the render options of its preset.
func (h *Handler) applyTemplate(w http.ResponseWriter, r *http.Request) {
	applied, err := h.services.TemplateService.Apply(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.applyTemplate")
		return
	}

	writeJSON(w, r, applied, http.StatusOK, "*Handler.applyTemplate")
}
