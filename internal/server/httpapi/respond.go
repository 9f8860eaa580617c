package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// User-facing message strings. The web client displays them verbatim.
const (
	msgAllFieldsRequired  = "❌ All fields required"
	msgEmailTaken         = "❌ Email already registered"
	msgInvalidCredentials = "❌ Invalid credentials"
	msgLoginRequired      = "❌ Please login to book a kit."
	msgInvalidQuestion    = "❌ Please provide a valid question."
	msgSignUpOK           = "✅ Signup successful and welcome email sent!"
	msgLoginOK            = "✅ Login successful"
	msgLogoutOK           = "✅ Logged out"
	msgBookingOK          = "✅ Booking confirmed and email sent!"
)

func msgServerError(err error) string { return fmt.Sprintf("❌ Server error: %v", err) }
func msgMailFailed(err error) string  { return fmt.Sprintf("❌ Email sending failed: %v", err) }
func msgChatError(err error) string   { return fmt.Sprintf("❌ An error occurred: %v", err) }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage writes the {"message": ...} envelope shared by most endpoints.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// writeReply writes the {"reply": ...} envelope used by the chat endpoint.
func writeReply(w http.ResponseWriter, status int, reply string) {
	writeJSON(w, status, map[string]string{"reply": reply})
}
