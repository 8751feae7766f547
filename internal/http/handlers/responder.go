package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	domainbracket "nfl-picks-service/internal/domain/bracket"
	"nfl-picks-service/internal/domain/pool"
	"nfl-picks-service/internal/domain/teams"
	"nfl-picks-service/internal/http/middleware"
	"nfl-picks-service/internal/http/requestutil"
	"nfl-picks-service/internal/logging"
	"nfl-picks-service/internal/providers"
	"nfl-picks-service/internal/views"
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
		reqID = r.Header.Get(requestutil.RequestIDHeader)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}

// renderError logs the cause and shows the generic error page. Poolers
// cannot tell a missing link from one already used.
func renderError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logging.Error(logger, "request failed", err, logging.FieldStatusCode, status)
	} else {
		logging.Warn(logger, "request refused", logging.FieldStatusCode, status, "err", err)
	}
	render(w, r, status, views.Error())
}

func statusFor(err error) int {
	if _, ok := teams.AsUnknownTeamError(err); ok {
		return http.StatusBadRequest
	}
	if _, ok := providers.AsNetworkError(err); ok {
		return http.StatusBadGateway
	}
	if _, ok := providers.AsParseError(err); ok {
		return http.StatusBadGateway
	}
	if _, ok := providers.AsRateLimitError(err); ok {
		return http.StatusBadGateway
	}
	switch {
	case errors.Is(err, pool.ErrNotFound), errors.Is(err, pool.ErrAlreadySubmitted):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest), errors.Is(err, providers.ErrInvalidWeek),
		errors.Is(err, domainbracket.ErrNotReady), errors.Is(err, domainbracket.ErrWinnersIncomplete):
		return http.StatusBadRequest
	case errors.Is(err, providers.ErrProviderUnavailable):
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
