// Package handlers implements the JSON endpoints of the catalog API.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"catalogd/internal/validation"
)

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// respondError writes a single-message error body.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondValidation writes rejected input as a 400 with the notifications
// grouped by field.
func respondValidation(w http.ResponseWriter, notifications validation.Notifications) {
	respondJSON(w, http.StatusBadRequest, map[string]any{"errors": notifications.Group()})
}

// serverError logs the error and responds 500 without leaking internals.
func serverError(w http.ResponseWriter, op string, err error) {
	slog.Error(op, "error", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

// decodeJSON reads the request body into dst, limited to 1 MiB. Unknown
// fields are rejected so typos surface instead of silently validating a
// zero value.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	// A second document in the body means the client is confused.
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
