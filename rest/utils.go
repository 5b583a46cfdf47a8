package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/juanFRANvelilla/backendTFG/service"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithResponse(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"response": message})
}

func respondWithValidationError(fields validator.ValidationErrorsTranslations, w http.ResponseWriter) {
	respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": fields,
	})
}

// respondServiceError maps the service error taxonomy onto status
// codes; anything unknown is a server fault.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrDebtNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCounterparty),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrNotCreditor),
		errors.Is(err, service.ErrAlreadyContacts),
		errors.Is(err, service.ErrRequestAlreadySent),
		errors.Is(err, service.ErrNoPendingRequest),
		errors.Is(err, service.ErrTooManyAttempts),
		errors.Is(err, service.ErrValidationNotStarted):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPhoneTaken):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrWrongCode),
		errors.Is(err, service.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
