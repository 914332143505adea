package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip, withDeviceID)

	router.Get("/api/version", h.getServerInfo)

	router.Post("/api/payload/encode", h.encodePayload)
	router.Post("/api/payload/detect", h.detectPayload)
	router.Post("/api/qr/render", h.renderQR)

	router.Group(func(r chi.Router) {
		r.Get("/api/history", h.listHistory)
		r.With(h.checkHash).Post("/api/history", h.importHistory)
		r.Delete("/api/history", h.clearHistory)
		r.Delete("/api/history/{id}", h.deleteHistoryEntry)
	})

	router.Get("/api/templates", h.listTemplates)
	router.Post("/api/templates/{id}/encode", h.applyTemplate)

	router.Post("/api/share", h.issueShare)
	router.Get("/api/share/{token}", h.resolveShare)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
