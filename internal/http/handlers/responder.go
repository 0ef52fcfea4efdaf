package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"pokedex-service/internal/domain"
	"pokedex-service/internal/http/middleware"
	"pokedex-service/internal/http/requestutil"
	"pokedex-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps a service failure onto its HTTP status. Unclassified errors are logged
// and reported without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	logger := loggerFromContext(r, fallback)
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.Error(logger, "unhandled service error", err)
		writeError(w, r, status, "internal error", logger)
		return
	}
	writeError(w, r, status, err.Error(), logger)
}

func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalid:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
