package users

import (
	"context"
	"sync"
	"time"

	"github.com/waterguard/backend/internal/common"
	"github.com/waterguard/backend/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests and local runs
// without a database. It mirrors the PostgreSQL contract, including the
// duplicate-email behavior.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byEmail: make(map[string]*models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.CreatedAt = time.Now()
	r.byEmail[user.Email] = &stored

	copy := stored
	return &copy, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	copy := *user
	return &copy, nil
}
