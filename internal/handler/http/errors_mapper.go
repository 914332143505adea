package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-forge/internal/logger"
	"github.com/MKhiriev/go-qr-forge/internal/render"
	"github.com/MKhiriev/go-qr-forge/internal/service"
	"github.com/MKhiriev/go-qr-forge/internal/store"
	"github.com/MKhiriev/go-qr-forge/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidPayload:        http.StatusUnprocessableEntity,
	service.ErrInvalidRenderOptions:  http.StatusBadRequest,
	service.ErrInvalidHistoryImport:  http.StatusBadRequest,
	service.ErrEmptyOwner:            http.StatusBadRequest,
	service.ErrHistoryEntryNotFound:  http.StatusNotFound,
	service.ErrTemplateNotFound:      http.StatusNotFound,
	service.ErrShareDisabled:         http.StatusNotImplemented,
	service.ErrShareTokenInvalid:     http.StatusForbidden,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	render.ErrContentTooLong: http.StatusUnprocessableEntity,
	render.ErrInvalidColor:   http.StatusBadRequest,
	render.ErrInvalidFormat:  http.StatusBadRequest,
	render.ErrEmptyPayload:   http.StatusUnprocessableEntity,

	store.ErrHistoryEntryNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError responds with the status mapped from err. Client errors
// carry their message; server errors only the status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
