// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pondside/farmops-be/internal/core/domain"
)

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// respondDomainError translates the service error taxonomy into HTTP status
// codes. Anything unclassified is a persistence or programming failure and
// maps to 500 with a generic message so store details never leak.
func respondDomainError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(w, logger, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		respondError(w, logger, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		respondError(w, logger, http.StatusConflict, err.Error())
	case domain.IsPrecondition(err):
		respondError(w, logger, http.StatusUnprocessableEntity, err.Error())
	default:
		respondError(w, logger, http.StatusInternalServerError, "internal server error")
	}
}
