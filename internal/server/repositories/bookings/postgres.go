// Package bookings provides PostgreSQL-backed persistence for water-testing
// kit bookings.
package bookings

import (
	"context"
	"fmt"

	"github.com/waterguard/backend/internal/dbx"
	"github.com/waterguard/backend/internal/server/models"
)

// PostgresRepository implements booking storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a booking row.
func (r *PostgresRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	query := `
		INSERT INTO bookings (id, user_email, name, email, phone, address, delivery_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		booking.ID, booking.UserEmail, booking.Name, booking.Email,
		booking.Phone, booking.Address, booking.Date).Scan(&booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return booking, nil
}

// ListByUserEmail returns all bookings placed by the given session identity,
// newest first.
func (r *PostgresRepository) ListByUserEmail(ctx context.Context, userEmail string) ([]*models.Booking, error) {
	query := `
		SELECT id, user_email, name, email, phone, address, delivery_date, created_at
		FROM bookings
		WHERE user_email = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to select bookings: %w", err)
	}
	defer rows.Close()

	var result []*models.Booking
	for rows.Next() {
		var item models.Booking
		if err := rows.Scan(
			&item.ID, &item.UserEmail, &item.Name, &item.Email,
			&item.Phone, &item.Address, &item.Date, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
