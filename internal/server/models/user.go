package models

import "time"

// User is a registered account. Email is the unique login key;
// PasswordHash holds the salted bcrypt hash of the password.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}
