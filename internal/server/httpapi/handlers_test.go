package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waterguard/backend/internal/common"
)

func decodeMessage(t *testing.T, body []byte) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp["message"]
}

// --- signup ---

func TestSignUp(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/signup",
		`{"name":"Alice","email":"alice@example.com","password":"s3cret"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "✅ Signup successful and welcome email sent!", decodeMessage(t, rec.Body.Bytes()))

	c := sessionCookie(t, rec)
	assert.True(t, c.HttpOnly)
	assert.NotEmpty(t, c.Value)

	require.Len(t, ts.sender.sent, 1)
	assert.Equal(t, "alice@example.com", ts.sender.sent[0].to)
}

func TestSignUp_MissingFields(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/signup", `{"name":"Alice","email":"alice@example.com"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "❌ All fields required", decodeMessage(t, rec.Body.Bytes()))
}

func TestSignUp_DuplicateEmailKeepsRecord(t *testing.T) {
	ts := newTestServer(t)
	ts.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := ts.do(t, http.MethodPost, "/signup",
		`{"name":"Mallory","email":"alice@example.com","password":"other"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "❌ Email already registered", decodeMessage(t, rec.Body.Bytes()))

	// the stored record is untouched
	user, err := ts.rm.users.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestSignUp_MailFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.sender.err = common.ErrorDelivery

	rec := ts.do(t, http.MethodPost, "/signup",
		`{"name":"Alice","email":"alice@example.com","password":"s3cret"}`, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "no session cookie when the welcome email fails")

	// the account still exists and can log in once mail recovers
	ts.sender.err = nil
	rec = ts.do(t, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"s3cret"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// --- login / logout / check-auth ---

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	ts.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := ts.do(t, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"s3cret"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "✅ Login successful", decodeMessage(t, rec.Body.Bytes()))
	assert.NotEmpty(t, sessionCookie(t, rec).Value)
}

func TestLogin_BadCredentials(t *testing.T) {
	ts := newTestServer(t)
	ts.signUp(t, "Alice", "alice@example.com", "s3cret")

	tests := []struct {
		name, body string
	}{
		{"wrong password", `{"email":"alice@example.com","password":"wrong"}`},
		{"unknown email", `{"email":"nobody@example.com","password":"s3cret"}`},
		{"missing password", `{"email":"alice@example.com"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/login", tt.body, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "❌ Invalid credentials", decodeMessage(t, rec.Body.Bytes()))
		})
	}
}

func TestCheckAuth(t *testing.T) {
	ts := newTestServer(t)
	session := ts.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := ts.do(t, http.MethodGet, "/check-auth", "", session)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":true}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/check-auth", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())
}

func TestCheckAuth_TamperedCookie(t *testing.T) {
	ts := newTestServer(t)
	session := ts.signUp(t, "Alice", "alice@example.com", "s3cret")
	session.Value += "x"

	rec := ts.do(t, http.MethodGet, "/check-auth", "", session)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)
	ts.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := ts.do(t, http.MethodPost, "/logout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "✅ Logged out", decodeMessage(t, rec.Body.Bytes()))

	// the cookie is expired; a client honoring it is logged out
	c := sessionCookie(t, rec)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)

	rec = ts.do(t, http.MethodGet, "/check-auth", "", c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// --- chat ---

func TestChat(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/chat", `{"prompt":"Is rainwater safe?"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reply":"Boil it."}`, rec.Body.String())
}

func TestChat_EmptyPrompt(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/chat", `{"prompt":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"reply":"❌ Please provide a valid question."}`, rec.Body.String())
}

func TestChat_UpstreamFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.llm.err = common.ErrorUpstream

	rec := ts.do(t, http.MethodPost, "/chat", `{"prompt":"hi"}`, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["reply"], "❌ An error occurred")
}

// --- book-kit ---

const bookingBody = `{"name":"Alice","email":"contact@example.com","phone":"+1 555 0100","address":"12 River St","date":"2026-09-05"}`

func TestBookKit_RequiresLogin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/book-kit", bookingBody, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "❌ Please login to book a kit.", decodeMessage(t, rec.Body.Bytes()))
}

func TestBookKit(t *testing.T) {
	ts := newTestServer(t)
	session := ts.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := ts.do(t, http.MethodPost, "/book-kit", bookingBody, session)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "✅ Booking confirmed and email sent!", decodeMessage(t, rec.Body.Bytes()))

	// confirmation goes to the contact address from the form
	require.Len(t, ts.sender.sent, 2) // welcome + confirmation
	assert.Equal(t, "contact@example.com", ts.sender.sent[1].to)
	assert.Contains(t, ts.sender.sent[1].body, "12 River St")
}

func TestBookKit_MailFailure(t *testing.T) {
	ts := newTestServer(t)
	session := ts.signUp(t, "Alice", "alice@example.com", "s3cret")
	ts.sender.err = common.ErrorDelivery

	rec := ts.do(t, http.MethodPost, "/book-kit", bookingBody, session)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeMessage(t, rec.Body.Bytes()), "❌ Email sending failed")
}

func TestBookKit_MissingFields(t *testing.T) {
	ts := newTestServer(t)
	session := ts.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := ts.do(t, http.MethodPost, "/book-kit", `{"name":"Alice"}`, session)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "❌ All fields required", decodeMessage(t, rec.Body.Bytes()))
}

func TestListBookings(t *testing.T) {
	ts := newTestServer(t)
	session := ts.signUp(t, "Alice", "alice@example.com", "s3cret")

	rec := ts.do(t, http.MethodPost, "/book-kit", bookingBody, session)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/bookings", "", session)
	assert.Equal(t, http.StatusOK, rec.Code)

	var list []bookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "12 River St", list[0].Address)
	assert.NotEmpty(t, list[0].ID)
}

// --- misc ---

func TestPing(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.do(t, http.MethodGet, "/ping", "", nil)

	rec := ts.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "waterguard_http_requests_total")
}
