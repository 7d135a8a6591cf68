package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/internal/service"
	"github.com/MKhiriev/culinary-server/internal/store"
	"github.com/MKhiriev/culinary-server/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	service.ErrUnauthorized:       http.StatusUnauthorized,
	service.ErrTokenIsExpired:     http.StatusUnauthorized,
	service.ErrForbidden:          http.StatusForbidden,

	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	// a malformed id is a store failure, not a client error
	store.ErrInvalidID:         http.StatusInternalServerError,
	store.ErrNoUserWasFound:    http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:  http.StatusInternalServerError,
	store.ErrExecutingQuery:    http.StatusInternalServerError,
	store.ErrScanningRows:      http.StatusInternalServerError,
	store.ErrDecodingDocument:  http.StatusInternalServerError,
	store.ErrSchemaNotMigrated: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and writes the error body. Server-side failures are
// reported with the generic status text only.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
