package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fantasydraft/draftpick/models"
	"github.com/fantasydraft/draftpick/sharetoken"
)

type tokenRosterRepository struct {
	path  string
	codec *sharetoken.Codec
}

// NewTokenRosterRepository returns the shareable-state backend: the
// authoritative roster lives in a signed token written to a state
// file. The token is the same transmissible form `draftpick share`
// prints, so copying the file contents into another session's import
// reproduces the draft. Every load passes through the codec's
// invariant re-validation.
func NewTokenRosterRepository(path string, codec *sharetoken.Codec) RosterRepository {
	return &tokenRosterRepository{path: path, codec: codec}
}

func (r *tokenRosterRepository) LoadAll(ctx context.Context) ([]*models.Participant, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make([]*models.Participant, 0), nil
		}
		return nil, fmt.Errorf("failed to read roster state file: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return make([]*models.Participant, 0), nil
	}

	roster, err := r.codec.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("failed to decode roster state file: %w", err)
	}
	return roster, nil
}

func (r *tokenRosterRepository) Insert(ctx context.Context, p *models.Participant) error {
	roster, err := r.LoadAll(ctx)
	if err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC().Truncate(time.Second)
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

	token, err := r.codec.Encode(append(roster, p))
	if err != nil {
		return fmt.Errorf("failed to encode roster state: %w", err)
	}
	return r.write(token)
}

func (r *tokenRosterRepository) Clear(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove roster state file: %w", err)
	}
	return nil
}

func (r *tokenRosterRepository) write(token string) error {
	dir := filepath.Dir(r.path)
	if _, err := os.Stat(dir); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read state dir: %w", err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state dir: %w", err)
		}
	}
	if err := os.WriteFile(r.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write roster state file: %w", err)
	}
	return nil
}
