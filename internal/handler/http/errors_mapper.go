package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/habit-tracker/internal/app"
	"github.com/MKhiriev/habit-tracker/internal/logger"
	"github.com/MKhiriev/habit-tracker/internal/service"
	"github.com/MKhiriev/habit-tracker/internal/store"
	"github.com/MKhiriev/habit-tracker/internal/utils"
	"github.com/MKhiriev/habit-tracker/models"
)

// errorStatus maps a sentinel error to its HTTP status. A non-empty detail
// replaces the error text in the response body.
type errorStatus struct {
	target error
	status int
	detail string
}

// errorStatuses is matched in order, so errors wrapping several sentinels
// resolve deterministically.
var errorStatuses = []errorStatus{
	{target: service.ErrUnauthorized, status: http.StatusUnauthorized, detail: app.MsgInvalidOrExpiredToken},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, detail: app.MsgInvalidEmailOrPassword},
	{target: service.ErrEmailAlreadyRegistered, status: http.StatusConflict, detail: app.MsgEmailAlreadyRegistered},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{target: service.ErrStorageUnavailable, status: http.StatusServiceUnavailable, detail: app.MsgServiceUnavailable},
	{target: store.ErrDatabaseUnavailable, status: http.StatusServiceUnavailable, detail: app.MsgServiceUnavailable},
}

// statusFromError returns the HTTP status and the response detail for err.
// Unknown errors map to 500 with a generic detail.
func statusFromError(err error) (int, string) {
	for _, s := range errorStatuses {
		if errors.Is(err, s.target) {
			if s.detail == "" {
				return s.status, err.Error()
			}
			return s.status, s.detail
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes the matching JSON error response.
// Unauthorized responses carry the bearer challenge header.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	if errors.Is(err, service.ErrUnauthorized) {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
}
