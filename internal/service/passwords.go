package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/saarzint/candle-recall/internal/utils"
)

// passwordHasher peppers passwords with an HMAC key before bcrypt. The hex
// HMAC is 64 bytes, under the bcrypt input limit of 72.
type passwordHasher struct {
	pepper string
	cost   int
}

func newPasswordHasher(pepper string) passwordHasher {
	return passwordHasher{pepper: pepper, cost: bcrypt.DefaultCost}
}

func (h passwordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(utils.HashString(password, h.pepper)), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. Malformed hashes count as
// a mismatch.
func (h passwordHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(utils.HashString(password, h.pepper))) == nil
}
