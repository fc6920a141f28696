package models

import "time"

const (
	// PoolSize is the fixed number of allocatable draft positions.
	PoolSize = 10

	// WarnThreshold is the roster size at which capacity warnings start.
	WarnThreshold = 7
)

// Participant is a single roster entry. All fields are immutable once
// the record has been persisted.
type Participant struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	DraftNumber int       `json:"draft_number"`
	CreatedAt   time.Time `json:"created_at"`
}
