package http

import (
	"net/http"
)

func (h *Handler) getServerInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK, "*Handler.getServerInfo")
}
