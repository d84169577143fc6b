package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/alecgard/mentorloop/internal/message"
	"github.com/alecgard/mentorloop/internal/platform"
	"github.com/alecgard/mentorloop/internal/session"
	"github.com/alecgard/mentorloop/internal/store"
	"github.com/alecgard/mentorloop/internal/user"
)

// maxBodySize is the maximum allowed request body size (1 MB).
const maxBodySize = 1 << 20

// errorEnvelope is the standard error response shape.
type errorEnvelope struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a JSON error response with the given status code.
func writeError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// readJSON decodes the request body into v, enforcing a size limit.
func readJSON(r *http.Request, v interface{}) error {
	lr := io.LimitReader(r.Body, maxBodySize)
	return json.NewDecoder(lr).Decode(v)
}

// writeStoreError maps a store mutation error to an HTTP response. Validation
// failures are the caller's fault; a platform rejection or outage is reported
// as a bad gateway because durable state lives behind the platform API.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotAuthenticated):
		writeError(w, http.StatusUnauthorized, "not_authenticated", err.Error())
	case errors.Is(err, store.ErrMentorNotFound), errors.Is(err, store.ErrReceiverNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case isValidationError(err):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
	case errors.Is(err, platform.ErrRejected):
		writeError(w, http.StatusBadGateway, "platform_rejected", err.Error())
	default:
		writeError(w, http.StatusBadGateway, "platform_unavailable", "platform request failed: "+platform.ClassifyError(err))
	}
}

// isValidationError checks whether the error is a known validation error from
// one of the domain packages.
func isValidationError(err error) bool {
	return errors.Is(err, user.ErrNameRequired) ||
		errors.Is(err, user.ErrEmailRequired) ||
		errors.Is(err, user.ErrPasswordRequired) ||
		errors.Is(err, user.ErrRoleInvalid) ||
		errors.Is(err, session.ErrMentorRequired) ||
		errors.Is(err, session.ErrTitleRequired) ||
		errors.Is(err, session.ErrDateTimeRequired) ||
		errors.Is(err, session.ErrDurationInvalid) ||
		errors.Is(err, message.ErrReceiverRequired) ||
		errors.Is(err, message.ErrContentRequired) ||
		errors.Is(err, store.ErrNotAMentor) ||
		errors.Is(err, store.ErrMenteeOnly)
}

