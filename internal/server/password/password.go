// Package password wraps bcrypt hashing and verification of user passwords.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/waterguard/backend/internal/common"
)

// bcryptCost balances hashing latency against brute-force resistance.
const bcryptCost = 12

// Hash derives a salted bcrypt hash from a plaintext password. bcrypt
// rejects inputs longer than 72 bytes.
func Hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
}

// Verify compares a stored hash against a candidate password in constant
// time. A mismatch yields common.ErrorUnauthorized; any other failure is
// returned as-is.
func Verify(hash []byte, password string) error {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return common.ErrorUnauthorized
		}
		return err
	}
	return nil
}
