package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qr-forge/models"
)

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.HistoryService.List(r.Context(), ownerFromRequest(r))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listHistory")
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}

	writeJSON(w, r, models.HistoryListResponse{Entries: entries, Length: len(entries)}, http.StatusOK, "*Handler.listHistory")
}

// importHistory replaces the caller's history with the uploaded list. It is
// the server side of client sync.
func (h *Handler) importHistory(w http.ResponseWriter, r *http.Request) {
	var req models.HistoryImportRequest
	if !decodeJSON(w, r, &req, "*Handler.importHistory") {
		return
	}

	if err := h.services.HistoryService.Import(r.Context(), ownerFromRequest(r), req); err != nil {
		writeServiceError(w, r, err, "*Handler.importHistory")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HistoryService.Clear(r.Context(), ownerFromRequest(r)); err != nil {
		writeServiceError(w, r, err, "*Handler.clearHistory")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.HistoryService.Remove(r.Context(), ownerFromRequest(r), id); err != nil {
		writeServiceError(w, r, err, "*Handler.deleteHistoryEntry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
