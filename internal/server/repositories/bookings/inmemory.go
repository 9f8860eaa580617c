package bookings

import (
	"context"
	"sync"
	"time"

	"github.com/waterguard/backend/internal/server/models"
)

// InMemoryRepository is a slice-backed Repository used in tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []*models.Booking
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *booking
	stored.CreatedAt = time.Now()
	r.items = append(r.items, &stored)

	copy := stored
	return &copy, nil
}

func (r *InMemoryRepository) ListByUserEmail(ctx context.Context, userEmail string) ([]*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Booking
	// newest first, matching the SQL implementation
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].UserEmail == userEmail {
			copy := *r.items[i]
			result = append(result, &copy)
		}
	}
	return result, nil
}
