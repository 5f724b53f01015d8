// internal/controller/respond.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	appErrors "github.com/marketmind/marketmind-backend/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps pipeline failures onto HTTP statuses: upstream API
// failures are 502, everything else 500. The error detail stays in the log;
// clients only see fixed messages.
func writeServiceError(w http.ResponseWriter, err error) {
	var ue *appErrors.UpstreamError
	if errors.As(err, &ue) {
		writeError(w, http.StatusBadGateway, "AI service unavailable. Please try again.")
		return
	}
	writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
