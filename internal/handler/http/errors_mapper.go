package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/internal/service"
	"github.com/MKhiriev/connector-sync/internal/store"
	"github.com/MKhiriev/connector-sync/internal/utils"
)

// errorStatuses is matched in order: an error wrapping both an operation
// failure and invalid input is a client error.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidPathID, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrNotFound, http.StatusNotFound},

	{service.ErrFetchingFailed, http.StatusBadGateway},
	{service.ErrCreationFailed, http.StatusBadGateway},
	{service.ErrUpdateFailed, http.StatusBadGateway},
	{service.ErrDeletionFailed, http.StatusBadGateway},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Internal errors
// are not echoed to the caller.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError && status != http.StatusBadGateway {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
