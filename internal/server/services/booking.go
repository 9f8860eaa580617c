package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/waterguard/backend/internal/common"
	"github.com/waterguard/backend/internal/server/mail"
	"github.com/waterguard/backend/internal/server/models"
	"github.com/waterguard/backend/internal/server/repositories/repomanager"
)

const bookingSubject = "✅ WaterGuard Kit Booking Confirmed!"

const bookingBodyFmt = `Hi %s,

Thanks for booking your Water Testing Kit with 💧 WaterGuard!

📍 Address:
%s

📦 Your kit will reach your doorstep by: %s

📘 The kit includes:
- pH Level Tester
- TDS Meter
- Turbidity Check
- Temperature Sensor
- Setup Manual

Stay safe & drink clean 🌊
— Team WaterGuard
`

// BookingService records water-testing-kit bookings and sends the
// confirmation email.
type BookingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sender      mail.Sender
}

// NewBookingService constructs a BookingService.
func NewBookingService(db *sql.DB, m repomanager.RepositoryManager, sender mail.Sender) *BookingService {
	return &BookingService{db: db, repomanager: m, sender: sender}
}

// Book persists a booking for the session user and emails the confirmation
// to the contact address from the form. If the booking is stored but the
// email cannot be delivered, the booking is kept and the delivery error is
// returned.
func (s *BookingService) Book(ctx context.Context, userEmail string, b *models.Booking) (*models.Booking, error) {
	if b.Name == "" || b.Email == "" || b.Address == "" || b.Date == "" {
		return nil, fmt.Errorf("%w: name, email, address and date are required", common.ErrorValidation)
	}

	b.ID = uuid.NewString()
	b.UserEmail = userEmail

	repo := s.repomanager.Bookings(s.db)
	created, err := repo.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("error creating booking: %v", err)
	}

	if err := s.sender.Send(ctx, b.Email, bookingSubject, fmt.Sprintf(bookingBodyFmt, b.Name, b.Address, b.Date)); err != nil {
		return nil, err
	}

	return created, nil
}

// List returns the session user's bookings, newest first.
func (s *BookingService) List(ctx context.Context, userEmail string) ([]*models.Booking, error) {
	repo := s.repomanager.Bookings(s.db)
	bookings, err := repo.ListByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %v", err)
	}
	return bookings, nil
}
