package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/waterguard/backend/internal/server/auth"
)

type ctxKey string

const sessionEmailKey ctxKey = "sessionEmail"

// sessionEmail returns the authenticated email placed in the context by
// sessionMiddleware.
func sessionEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(sessionEmailKey).(string)
	return email, ok
}

// sessionMiddleware rejects requests without a valid session cookie before
// the handler sees the body.
func (s *HTTPServer) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := s.currentSession(r)
		if !ok {
			writeMessage(w, http.StatusUnauthorized, msgLoginRequired)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionEmailKey, email)))
	})
}

// currentSession verifies the session cookie and returns the email it was
// issued for. Missing, expired, and tampered cookies all read as logged out.
func (s *HTTPServer) currentSession(r *http.Request) (string, bool) {
	token, ok := auth.SessionFromRequest(r)
	if !ok {
		return "", false
	}
	email, err := auth.GetEmailFromToken(token, s.jwtSecret)
	if err != nil {
		return "", false
	}
	return email, true
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *HTTPServer) metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		// the pattern is only known after routing
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		s.metrics.RecordRequest(r.Method, route, rec.status, time.Since(start))
	})
}
