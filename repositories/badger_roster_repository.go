package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/fantasydraft/draftpick/models"
)

// rosterKey is the fixed key the whole roster is stored under, as one
// JSON value. Mirrors the local-storage strategy: a single blob, not a
// row per record.
const rosterKey = "draftpick.roster"

type badgerRosterRepository struct {
	db *badger.DB
}

// NewBadgerRosterRepository returns the local key-value blob backend.
func NewBadgerRosterRepository(db *badger.DB) RosterRepository {
	return &badgerRosterRepository{db: db}
}

func (r *badgerRosterRepository) LoadAll(ctx context.Context) ([]*models.Participant, error) {
	var roster []*models.Participant
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(rosterKey))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &roster)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load roster blob: %w", err)
	}
	if roster == nil {
		roster = make([]*models.Participant, 0)
	}
	return roster, nil
}

func (r *badgerRosterRepository) Insert(ctx context.Context, p *models.Participant) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	// Read-modify-write inside a single update transaction, so the
	// conflict check is atomic with the insert.
	err := r.db.Update(func(txn *badger.Txn) error {
		var roster []*models.Participant
		item, err := txn.Get([]byte(rosterKey))
		if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err == nil {
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &roster)
			}); err != nil {
				return err
			}
		}

		maxID := 0
		for _, existing := range roster {
			if strings.EqualFold(existing.Name, p.Name) {
				return ErrNameConflict
			}
			if existing.DraftNumber == p.DraftNumber {
				return ErrDraftNumberConflict
			}
			if existing.ID > maxID {
				maxID = existing.ID
			}
		}
		p.ID = maxID + 1

		roster = append(roster, p)
		encoded, err := json.Marshal(roster)
		if err != nil {
			return err
		}
		return txn.Set([]byte(rosterKey), encoded)
	})
	if err != nil {
		if errors.Is(err, ErrNameConflict) || errors.Is(err, ErrDraftNumberConflict) {
			return err
		}
		return fmt.Errorf("failed to insert participant into roster blob: %w", err)
	}
	return nil
}

func (r *badgerRosterRepository) Clear(ctx context.Context) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(rosterKey))
	})
	if err != nil {
		return fmt.Errorf("failed to clear roster blob: %w", err)
	}
	return nil
}
