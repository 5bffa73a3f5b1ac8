package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jdewildt/Finance-Ledger-Backend/internal/apperrors"
	"github.com/jdewildt/Finance-Ledger-Backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondServiceError maps core errors onto HTTP status codes:
// validation failures to 400, missing entities to 404, persistence or
// unknown failures to 500.
func respondServiceError(w http.ResponseWriter, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	}
	respondJSON(w, status, map[string]string{
		"error":  message,
		"detail": err.Error(),
	})
}

// decodeJSON decodes the request body into v, responding with 400 on
// malformed JSON. Returns false when the response has been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "invalid JSON body",
			"detail": err.Error(),
		})
		return false
	}
	return true
}

// parseDate parses a validated YYYY-MM-DD date string. Callers run
// request validation first, so a parse failure here is a programming
// error and the zero time is returned.
func parseDate(value string) time.Time {
	t, _ := time.Parse(validation.DateFormat, value)
	return t
}

// parseDatePtr parses an optional date string into a *time.Time.
func parseDatePtr(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t := parseDate(*value)
	return &t
}
