package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pokedex-service/internal/http/requestutil"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/metrics"
)

// LoggingMiddleware wraps the handler with request logging, request ID support, and metrics.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get(requestutil.HeaderRequestID))
		w.Header().Set(requestutil.HeaderRequestID, reqID)

		logger := baseLogger.With(
			slog.String(logging.FieldRequestID, reqID),
			slog.String(logging.FieldMethod, r.Method),
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("query", r.URL.RawQuery),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)

		ctx := logging.WithLogger(r.Context(), logger)
		ctx = withRequestID(ctx, reqID)
		r = r.WithContext(ctx)
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), ww.status, duration)

		logger.Info("request complete",
			slog.Int(logging.FieldStatusCode, ww.status),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Flush lets streaming handlers (the MCP transport) push partial responses through the wrapper.
func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// RequestIDFromContext extracts the request ID stored by the logging middleware.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(requestIDKey{}).(string); ok {
		return val
	}
	return ""
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

type requestIDKey struct{}

// normalizePath collapses path parameters so metric labels stay bounded.
func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	path = strings.Split(path, "?")[0]
	segments := strings.Split(strings.Trim(path, "/"), "/")

	switch {
	case path == "/" || path == "/health":
		return path
	case segments[0] == "mcp":
		return "/mcp"
	case segments[0] == "pokemon":
		return normalizePokemonPath(segments)
	case segments[0] == "team":
		return normalizeTeamPath(segments)
	default:
		return "other"
	}
}

func normalizePokemonPath(segments []string) string {
	switch {
	case len(segments) == 2 && segments[1] == "compare":
		return "/pokemon/compare"
	case len(segments) == 2:
		return "/pokemon/{nameOrID}"
	case len(segments) == 3 && segments[1] == "trainer":
		return "/pokemon/trainer/{trainer}"
	case len(segments) == 3 && segments[1] == "region":
		return "/pokemon/region/{region}"
	default:
		return "other"
	}
}

func normalizeTeamPath(segments []string) string {
	switch {
	case len(segments) == 2:
		return "/team/{userID}"
	case len(segments) == 3 && segments[2] == "add":
		return "/team/{userID}/add"
	case len(segments) == 4 && segments[2] == "remove":
		return "/team/{userID}/remove/{pokemonName}"
	default:
		return "other"
	}
}
