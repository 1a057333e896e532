package models

import (
	"time"

	"github.com/google/uuid"
)

type WellBeing struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	Name        string    `json:"name"`
	AccentColor string    `json:"accentColor"`
	Removable   bool      `json:"isRemovable"`
	CreatedAt   time.Time `json:"created_at"`
}

// DefaultWellBeing is one of the five categories seeded at signup.
type DefaultWellBeing struct {
	Name        string
	AccentColor string
	Removable   bool
}

// DefaultWellBeings are seeded in this order; only "General" is
// protected from deletion.
var DefaultWellBeings = []DefaultWellBeing{
	{Name: "General", AccentColor: "#3F48CC", Removable: false},
	{Name: "Mental", AccentColor: "#764986", Removable: true},
	{Name: "Physical", AccentColor: "#0F7D97", Removable: true},
	{Name: "Social", AccentColor: "#E55118", Removable: true},
	{Name: "Financial", AccentColor: "#379587", Removable: true},
}
