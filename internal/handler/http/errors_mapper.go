package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/service"
	"github.com/MKhiriev/go-market-keeper/internal/store"
	"github.com/MKhiriev/go-market-keeper/internal/utils"
	"github.com/MKhiriev/go-market-keeper/internal/validators"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is matched in order, so a chain wrapping several sentinels
// gets the status of the first listed one. Request and service errors come
// before the store errors they may wrap.
var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidID, http.StatusBadRequest},
	{ErrInvalidQuery, http.StatusBadRequest},
	{ErrMalformedMultipart, http.StatusBadRequest},
	{ErrNoFiles, http.StatusBadRequest},
	{ErrTooManyFiles, http.StatusBadRequest},
	{ErrRequestTooLarge, http.StatusRequestEntityTooLarge},

	{validators.ErrValidationFailed, http.StatusBadRequest},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrUnauthenticated, http.StatusUnauthorized},
	{service.ErrPayloadSizeMismatch, http.StatusUnprocessableEntity},
	{service.ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
	{service.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
	{service.ErrUnknownImage, http.StatusUnprocessableEntity},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{store.ErrUsernameAlreadyExists, http.StatusConflict},
	{store.ErrNoAdminWasFound, http.StatusNotFound},
	{store.ErrProductNotFound, http.StatusNotFound},
	{store.ErrCategoryNotFound, http.StatusNotFound},
	{store.ErrCategoryAlreadyExists, http.StatusConflict},
	{store.ErrUnknownCategory, http.StatusUnprocessableEntity},
	{store.ErrUploadNotFound, http.StatusNotFound},
	{store.ErrRegistrationFailed, http.StatusInternalServerError},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, mapping := range errorStatuses {
		if errors.Is(err, mapping.err) {
			return mapping.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError keeps internal details out of 5xx bodies.
func messageFromError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// writeError logs err and answers with the mapped status and a JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err, status), status)
}
