package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"philharmonic-tickets/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// decodeJSON decodes a request body into v and runs its validation tags
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body", models.ErrInvalidInput)
	}

	if err := validate.Struct(v); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			field := validationErrors[0]
			return fmt.Errorf("%w: field %s failed on %s", models.ErrInvalidInput, field.Field(), field.Tag())
		}
		return fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	return nil
}

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// writeError translates a service error into its stable outward status.
// Every error kind maps to exactly one status; anything outside the closed
// set is a 500 with the detail kept out of the response.
func writeError(w http.ResponseWriter, err error) {
	var status int
	message := err.Error()

	switch {
	case errors.Is(err, models.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrUsernameTaken),
		errors.Is(err, models.ErrInsufficientTickets):
		status = http.StatusConflict
	default:
		log.Printf("internal error: %v", err)
		status = http.StatusInternalServerError
		message = "internal server error"
	}

	writeJSON(w, status, map[string]string{"error": message})
}
