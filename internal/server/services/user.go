// Package services contains server-side business logic. This file implements
// UserService, which handles signup with a welcome email, login, and issuing
// signed session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waterguard/backend/internal/common"
	"github.com/waterguard/backend/internal/server/auth"
	"github.com/waterguard/backend/internal/server/config"
	"github.com/waterguard/backend/internal/server/mail"
	"github.com/waterguard/backend/internal/server/models"
	"github.com/waterguard/backend/internal/server/password"
	"github.com/waterguard/backend/internal/server/repositories/repomanager"
)

const welcomeSubject = "🎉 Welcome to WaterGuard!"

const welcomeBodyFmt = `Hi %s,

Thank you for signing up to 💧 WaterGuard — your smart partner for clean and safe water!

🚀 Features you now have access to:
- Check your water quality instantly
- Book doorstep testing kits
- Chat with AquaBot for water safety advice
- Get personalized insights & alerts

Explore now: https://your-waterguard-site.com

Clean water. Clear life.
— Team WaterGuard
`

// UserService provides account operations:
// - SignUp: create a user, send the welcome email, mint a session token
// - Login: verify credentials and mint a session token
type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	sender                  mail.Sender
	jwtSecret               []byte
	sessionValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories, the mail
// sender, and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, sender mail.Sender, cfg *config.Config) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		sender:                  sender,
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
	}
}

// SignUp registers a new account and sends the welcome email. A taken email
// yields common.ErrorAlreadyExists before any mail is attempted. If the
// account is created but the email cannot be delivered, the account is kept
// and the delivery error is returned; no session token is issued in that case.
func (s *UserService) SignUp(ctx context.Context, name, email, pwd string) (string, error) {
	if name == "" || email == "" || pwd == "" {
		return "", fmt.Errorf("%w: name, email and password are required", common.ErrorValidation)
	}

	hash, err := password.Hash(pwd)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{ID: uuid.NewString(), Name: name, Email: email, PasswordHash: hash}
	repo := s.repomanager.Users(s.db)
	if _, err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		return "", fmt.Errorf("error creating user: %v", err)
	}

	if err := s.sender.Send(ctx, email, welcomeSubject, fmt.Sprintf(welcomeBodyFmt, name)); err != nil {
		return "", err
	}

	return s.generateSessionToken(email)
}

// Login verifies the provided password against the stored hash and, on
// success, returns a new session token. Unknown emails and wrong passwords
// both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, pwd string) (string, error) {
	if email == "" || pwd == "" {
		return "", fmt.Errorf("%w: email and password are required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if err := password.Verify(user.PasswordHash, pwd); err != nil {
		return "", err
	}

	return s.generateSessionToken(email)
}

func (s *UserService) generateSessionToken(email string) (string, error) {
	token, err := auth.GenerateToken(email, s.jwtSecret, s.sessionValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
