package models

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Touch refreshes the update timestamp. Mutating writes call this
// explicitly so the timestamp change is part of the write contract.
func (a *Account) Touch() {
	a.UpdatedAt = time.Now().UTC()
}
