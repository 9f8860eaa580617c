package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/waterguard/backend/internal/common"
	"github.com/waterguard/backend/internal/server/auth"
	"github.com/waterguard/backend/internal/server/models"
)

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

type bookKitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Date    string `json:"date"`
}

type bookingResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Date    string `json:"date"`
}

func (s *HTTPServer) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgAllFieldsRequired)
		return
	}

	token, err := s.users.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeMessage(w, http.StatusBadRequest, msgAllFieldsRequired)
		case errors.Is(err, common.ErrorAlreadyExists):
			writeMessage(w, http.StatusConflict, msgEmailTaken)
		default:
			s.logger.Error(r.Context(), "signup failed", "error", err)
			writeMessage(w, http.StatusInternalServerError, msgServerError(err))
		}
		return
	}

	auth.SetSessionCookie(w, token, s.sessionValidity)
	writeMessage(w, http.StatusOK, msgSignUpOK)
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// a missing field reads the same as a wrong one
		if errors.Is(err, common.ErrorUnauthorized) || errors.Is(err, common.ErrorValidation) {
			writeMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgServerError(err))
		return
	}

	auth.SetSessionCookie(w, token, s.sessionValidity)
	writeMessage(w, http.StatusOK, msgLoginOK)
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	writeMessage(w, http.StatusOK, msgLogoutOK)
}

func (s *HTTPServer) handleCheckAuth(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.currentSession(r); ok {
		writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
		return
	}
	writeJSON(w, http.StatusUnauthorized, map[string]bool{"authenticated": false})
}

func (s *HTTPServer) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeReply(w, http.StatusBadRequest, msgInvalidQuestion)
		return
	}

	reply, err := s.chat.Ask(r.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			writeReply(w, http.StatusBadRequest, msgInvalidQuestion)
			return
		}
		s.logger.Error(r.Context(), "chat failed", "error", err)
		writeReply(w, http.StatusInternalServerError, msgChatError(err))
		return
	}

	writeReply(w, http.StatusOK, reply)
}

func (s *HTTPServer) handleBookKit(w http.ResponseWriter, r *http.Request) {
	email, _ := sessionEmail(r.Context())

	var req bookKitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, msgAllFieldsRequired)
		return
	}

	booking := &models.Booking{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Date:    req.Date,
	}

	if _, err := s.bookings.Book(r.Context(), email, booking); err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			writeMessage(w, http.StatusBadRequest, msgAllFieldsRequired)
		case errors.Is(err, common.ErrorDelivery):
			s.logger.Error(r.Context(), "booking email failed", "error", err)
			writeMessage(w, http.StatusInternalServerError, msgMailFailed(err))
		default:
			s.logger.Error(r.Context(), "booking failed", "error", err)
			writeMessage(w, http.StatusInternalServerError, msgServerError(err))
		}
		return
	}

	writeMessage(w, http.StatusOK, msgBookingOK)
}

func (s *HTTPServer) handleListBookings(w http.ResponseWriter, r *http.Request) {
	email, _ := sessionEmail(r.Context())

	list, err := s.bookings.List(r.Context(), email)
	if err != nil {
		s.logger.Error(r.Context(), "listing bookings failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgServerError(err))
		return
	}

	resp := make([]bookingResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, bookingResponse{
			ID:      b.ID,
			Name:    b.Name,
			Email:   b.Email,
			Phone:   b.Phone,
			Address: b.Address,
			Date:    b.Date,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *HTTPServer) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
