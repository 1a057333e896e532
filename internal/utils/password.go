package utils

import (
	"golang.org/x/crypto/bcrypt"
)

const DefaultBcryptCost = 10

// HashPassword derives a salted bcrypt credential from a plaintext
// password. Cost is the bcrypt work factor; values below bcrypt's
// minimum fall back to DefaultBcryptCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultBcryptCost
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// CheckPassword reports whether password matches the stored credential.
// bcrypt's own comparison is used, so mismatch position never leaks
// through timing.
func CheckPassword(hashedPassword string, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
