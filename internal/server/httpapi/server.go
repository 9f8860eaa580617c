// Package httpapi exposes the public HTTP surface: signup, login, logout,
// session check, kit booking, and the chat endpoint, plus /ping and
// Prometheus /metrics.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/waterguard/backend/internal/logging"
	"github.com/waterguard/backend/internal/metrics"
	"github.com/waterguard/backend/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address         string
	logger          logging.Logger
	users           *services.UserService
	bookings        *services.BookingService
	chat            *services.ChatService
	metrics         *metrics.Metrics
	jwtSecret       []byte
	sessionValidity time.Duration
}

func NewHTTPServer(addr string, l logging.Logger, us *services.UserService, bs *services.BookingService,
	cs *services.ChatService, m *metrics.Metrics, secretKey string, sessionValidity time.Duration) *HTTPServer {
	return &HTTPServer{
		address:         addr,
		logger:          l.With("module", "http_server"),
		users:           us,
		bookings:        bs,
		chat:            cs,
		metrics:         m,
		jwtSecret:       []byte(secretKey),
		sessionValidity: sessionValidity,
	}
}

// Router assembles the route tree. Booking routes sit behind the session
// middleware; everything else handles authentication itself or is public.
func (s *HTTPServer) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(s.metricsMiddleware)

	r.Post("/signup", s.handleSignUp)
	r.Post("/login", s.handleLogin)
	r.Post("/logout", s.handleLogout)
	r.Get("/check-auth", s.handleCheckAuth)
	r.Post("/chat", s.handleChat)

	r.Group(func(r chi.Router) {
		r.Use(s.sessionMiddleware)
		r.Post("/book-kit", s.handleBookKit)
		r.Get("/bookings", s.handleListBookings)
	})

	r.Get("/ping", s.handlePing)
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{}))

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
