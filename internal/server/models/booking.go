package models

import "time"

// Booking is a water-testing-kit delivery request made by a logged-in user.
// Name, Email, Phone, Address and Date come from the booking form; UserEmail
// is the session identity that placed it.
type Booking struct {
	ID        string
	UserEmail string
	Name      string
	Email     string
	Phone     string
	Address   string
	Date      string
	CreatedAt time.Time
}
