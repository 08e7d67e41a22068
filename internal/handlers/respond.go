package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/casinoapp/casino-games/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Anything unrecognized is a storage failure and surfaces as a generic 500.
func writeServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, services.ErrEmailTaken):
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": err.Error()})
	case errors.Is(err, services.ErrGameNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"message": err.Error()})
	default:
		log.Printf("%s: %v", fallbackMessage, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": fallbackMessage,
			"error":   err.Error(),
		})
	}
}
