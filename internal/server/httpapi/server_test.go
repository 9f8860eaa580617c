package httpapi

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/waterguard/backend/internal/dbx"
	"github.com/waterguard/backend/internal/logging"
	"github.com/waterguard/backend/internal/metrics"
	"github.com/waterguard/backend/internal/server/config"
	bookingsrepo "github.com/waterguard/backend/internal/server/repositories/bookings"
	usersrepo "github.com/waterguard/backend/internal/server/repositories/users"
	"github.com/waterguard/backend/internal/server/services"
)

// --- fakes ---

type fakeRepoManager struct {
	users    *usersrepo.InMemoryRepository
	bookings *bookingsrepo.InMemoryRepository
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return f.users }
func (f *fakeRepoManager) Bookings(dbx.DBTX) bookingsrepo.Repository    { return f.bookings }

type sentMail struct {
	to, subject, body string
}

type fakeSender struct {
	sent []sentMail
	err  error
}

func (f *fakeSender) Send(ctx context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeLLM struct {
	reply string
	err   error
}

func (f *fakeLLM) Ask(ctx context.Context, prompt string) (string, error) {
	return f.reply, f.err
}

// testServer bundles the server under test with its fakes.
type testServer struct {
	srv    *HTTPServer
	router http.Handler
	rm     *fakeRepoManager
	sender *fakeSender
	llm    *fakeLLM
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		SecretKey:               "test-secret",
		SessionValidityDuration: time.Hour,
	}

	rm := &fakeRepoManager{
		users:    usersrepo.NewInMemoryRepository(),
		bookings: bookingsrepo.NewInMemoryRepository(),
	}
	sender := &fakeSender{}
	llm := &fakeLLM{reply: "Boil it."}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	srv := NewHTTPServer(":0", logger,
		services.NewUserService(nil, rm, sender, cfg),
		services.NewBookingService(nil, rm, sender),
		services.NewChatService(llm),
		metrics.New(),
		cfg.SecretKey, cfg.SessionValidityDuration)

	return &testServer{srv: srv, router: srv.Router(), rm: rm, sender: sender, llm: llm}
}

// do performs a request against the router. A session cookie, when given,
// is attached to the request.
func (ts *testServer) do(t *testing.T, method, path, body string, session *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if session != nil {
		req.AddCookie(session)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// sessionCookie extracts the session cookie from a response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "waterguard_session" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

// signUp registers a user and returns the session cookie.
func (ts *testServer) signUp(t *testing.T, name, email, pwd string) *http.Cookie {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/signup",
		`{"name":"`+name+`","email":"`+email+`","password":"`+pwd+`"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return sessionCookie(t, rec)
}
