package users

import (
	"context"

	"github.com/waterguard/backend/internal/server/models"
)

// Repository persists user accounts. Create fails with
// common.ErrorAlreadyExists when the email is taken; GetByEmail fails with
// common.ErrorNotFound for unknown emails.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
