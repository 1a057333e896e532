package models

import (
	"time"

	"github.com/google/uuid"
)

// State is one of the seven qualitative levels a log can record.
type State string

const (
	StateVeryBad      State = "Very Bad"
	StateBad          State = "Bad"
	StateSlightlyBad  State = "Slightly Bad"
	StateOkay         State = "Okay"
	StateSlightlyGood State = "Slightly Good"
	StateGood         State = "Good"
	StateVeryGood     State = "Very Good"
)

// States lists the levels in order from worst to best.
var States = []State{
	StateVeryBad,
	StateBad,
	StateSlightlyBad,
	StateOkay,
	StateSlightlyGood,
	StateGood,
	StateVeryGood,
}

func (s State) Valid() bool {
	for _, known := range States {
		if s == known {
			return true
		}
	}
	return false
}

type Log struct {
	ID          uuid.UUID `json:"id"`
	AccountID   uuid.UUID `json:"account_id"`
	WellBeingID uuid.UUID `json:"wellbeingId"`
	Date        time.Time `json:"date"`
	State       State     `json:"state"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Touch refreshes the update timestamp; called on every write.
func (l *Log) Touch() {
	l.UpdatedAt = time.Now().UTC()
}

// LogEntry is a log joined with its well-being's display attributes.
// Name and color are empty when the well-being has since been deleted;
// the log itself is kept for history.
type LogEntry struct {
	Log
	WellBeingName  string `json:"wellBeingName"`
	WellBeingColor string `json:"wellBeingColor"`
}
