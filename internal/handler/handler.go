package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"stockroom/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a service error to an HTTP response. Domain errors
// carry their own code and a safe message; anything else becomes an opaque
// internal error.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
		return
	}

	status := http.StatusBadRequest
	switch domainErr.Code {
	case model.ErrCodeProductNotFound:
		status = http.StatusNotFound
	case model.ErrCodeDuplicateSKU:
		status = http.StatusConflict
	case model.ErrCodeInsufficientStock:
		status = http.StatusUnprocessableEntity
	case model.ErrCodeInternalError:
		status = http.StatusInternalServerError
	}

	writeError(w, status, domainErr.Code, domainErr.Message, logger)
}

// pathID parses the {id} path segment of the request.
func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

// queryInt parses an optional integer query parameter, returning fallback
// when absent and an error when malformed.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
