package bookings

import (
	"context"

	"github.com/waterguard/backend/internal/server/models"
)

// Repository persists kit bookings.
type Repository interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	ListByUserEmail(ctx context.Context, userEmail string) ([]*models.Booking, error)
}
