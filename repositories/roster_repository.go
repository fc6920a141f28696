package repositories

import (
	"context"
	"errors"

	"github.com/fantasydraft/draftpick/models"
)

var (
	ErrNameConflict        = errors.New("participant name is already on the roster")
	ErrDraftNumberConflict = errors.New("draft number is already assigned")
)

// RosterRepository unifies the observed persistence strategies behind
// one contract: a structured table (postgres or embedded sqlite), a
// local key-value blob (badger), and a signed shareable token.
//
// LoadAll makes no ordering promise; the service re-sorts by draft
// number for display. Insert assigns ID and CreatedAt on the record it
// is given. Clear is irreversible and the caller obtains confirmation
// before calling it.
type RosterRepository interface {
	LoadAll(ctx context.Context) ([]*models.Participant, error)
	Insert(ctx context.Context, p *models.Participant) error
	Clear(ctx context.Context) error
}
