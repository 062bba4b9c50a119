package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps a service error onto its HTTP status and the
// message safe to surface.
func respondWithAppError(w http.ResponseWriter, err error) {
	respondWithError(w, apperrors.HTTPStatus(err), apperrors.UserMessage(err))
}
