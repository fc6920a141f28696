package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/fantasydraft/draftpick/draft"
	"github.com/fantasydraft/draftpick/models"
	"github.com/fantasydraft/draftpick/repositories"
	"github.com/fantasydraft/draftpick/sharetoken"
)

// Status summarizes roster occupancy for display.
type Status struct {
	Size     int
	Capacity int
	Warn     bool
	Full     bool
}

// RosterService owns the allocation protocol: validate the name, check
// for duplicates and capacity, draw a number, persist. The service
// holds the authoritative in-memory roster loaded from the configured
// backend plus two derived indexes (used numbers, case-folded names)
// that are rebuilt on load and updated only after a successful persist.
//
// A single mutex serializes allocation attempts: a new request waits
// for the previous one to finish, matching the one-writer model. There
// is no retry; a failed attempt leaves no partial state behind.
type RosterService struct {
	repo      repositories.RosterRepository
	allocator *draft.Allocator
	codec     *sharetoken.Codec
	logger    *slog.Logger

	mu     sync.Mutex
	roster []*models.Participant
	used   map[int]bool
	names  map[string]bool
	loaded bool
}

func NewRosterService(
	repo repositories.RosterRepository,
	allocator *draft.Allocator,
	codec *sharetoken.Codec,
	logger *slog.Logger,
) *RosterService {
	return &RosterService{
		repo:      repo,
		allocator: allocator,
		codec:     codec,
		logger:    logger,
	}
}

// load pulls the roster from the backend and rebuilds the derived
// indexes. Backends make no ordering promise, so the canonical sort by
// draft number happens here. Caller must hold s.mu.
func (s *RosterService) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	roster, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	sort.Slice(roster, func(i, j int) bool {
		return roster[i].DraftNumber < roster[j].DraftNumber
	})

	s.roster = roster
	s.rebuildIndexes()
	s.loaded = true
	return nil
}

// rebuildIndexes recomputes the used-number and name lookups from the
// authoritative roster. Caller must hold s.mu.
func (s *RosterService) rebuildIndexes() {
	s.used = make(map[int]bool, len(s.roster))
	s.names = make(map[string]bool, len(s.roster))
	for _, p := range s.roster {
		s.used[p.DraftNumber] = true
		s.names[strings.ToLower(p.Name)] = true
	}
}

// Join runs one allocation attempt for the given name and returns the
// new record on success. On any failure the cached roster and indexes
// are left exactly as they were.
func (s *RosterService) Join(ctx context.Context, name string) (*models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if s.names[strings.ToLower(name)] {
		return nil, ErrNameAlreadyAssigned
	}
	if len(s.roster) >= models.PoolSize {
		return nil, ErrRosterFull
	}

	number, err := s.allocator.Allocate(s.used)
	if err != nil {
		if errors.Is(err, draft.ErrPoolExhausted) {
			// Size was below capacity a moment ago, so the pool
			// cannot legitimately be empty.
			return nil, fmt.Errorf("%w: pool exhausted with %d/%d participants",
				ErrInvariantViolation, len(s.roster), models.PoolSize)
		}
		return nil, fmt.Errorf("failed to allocate draft number: %w", err)
	}

	p := &models.Participant{
		Name:        name,
		DraftNumber: number,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		// Roll back the pending addition: nothing was appended yet,
		// the indexes are untouched, so the attempt simply failed.
		s.logger.Error("failed to persist participant",
			slog.String("name", name),
			slog.Int("draft_number", number),
			slog.Any("error", err))
		if errors.Is(err, repositories.ErrNameConflict) {
			return nil, ErrNameAlreadyAssigned
		}
		if errors.Is(err, repositories.ErrDraftNumberConflict) {
			return nil, fmt.Errorf("%w: backend rejected draft number %d as taken",
				ErrInvariantViolation, number)
		}
		return nil, fmt.Errorf("failed to persist participant: %w", err)
	}

	s.roster = append(s.roster, p)
	sort.Slice(s.roster, func(i, j int) bool {
		return s.roster[i].DraftNumber < s.roster[j].DraftNumber
	})
	s.used[p.DraftNumber] = true
	s.names[strings.ToLower(p.Name)] = true

	s.logger.Info("participant joined",
		slog.String("name", p.Name),
		slog.Int("draft_number", p.DraftNumber),
		slog.Int("roster_size", len(s.roster)))
	return p, nil
}

// List returns the roster sorted ascending by draft number. The slice
// holds copies, so callers cannot mutate the records behind the store.
func (s *RosterService) List(ctx context.Context) ([]models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	out := make([]models.Participant, 0, len(s.roster))
	for _, p := range s.roster {
		out = append(out, *p)
	}
	return out, nil
}

// Status reports roster occupancy and the capacity warning state.
func (s *RosterService) Status(ctx context.Context) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return Status{}, err
	}

	size := len(s.roster)
	return Status{
		Size:     size,
		Capacity: models.PoolSize,
		Warn:     size >= models.WarnThreshold && size < models.PoolSize,
		Full:     size >= models.PoolSize,
	}, nil
}

// Clear empties the roster. Irreversible; confirmed is the caller's
// obtained confirmation and the service refuses without it.
func (s *RosterService) Clear(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear roster: %w", err)
	}

	s.roster = make([]*models.Participant, 0)
	s.rebuildIndexes()
	s.loaded = true

	s.logger.Info("roster cleared")
	return nil
}

// Share encodes the current roster as a signed transferable token.
func (s *RosterService) Share(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return "", err
	}

	token, err := s.codec.Encode(s.roster)
	if err != nil {
		return "", fmt.Errorf("failed to encode share token: %w", err)
	}
	return token, nil
}

// Import replaces the current roster with the one carried by the
// token. The payload comes from outside, so it is re-validated in full
// (signature, record shape, both uniqueness invariants) before any
// record is persisted. Destructive, hence the confirmation flag.
func (s *RosterService) Import(ctx context.Context, token string, confirmed bool) (int, error) {
	if !confirmed {
		return 0, ErrNotConfirmed
	}

	incoming, err := s.codec.Decode(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidShareToken, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return 0, fmt.Errorf("failed to clear roster before import: %w", err)
	}
	s.roster = make([]*models.Participant, 0)
	s.rebuildIndexes()
	s.loaded = true

	for _, p := range incoming {
		record := &models.Participant{
			Name:        p.Name,
			DraftNumber: p.DraftNumber,
			CreatedAt:   p.CreatedAt,
		}
		if err := s.repo.Insert(ctx, record); err != nil {
			return len(s.roster), fmt.Errorf("failed to persist imported participant %q: %w", p.Name, err)
		}
		s.roster = append(s.roster, record)
		s.used[record.DraftNumber] = true
		s.names[strings.ToLower(record.Name)] = true
	}

	sort.Slice(s.roster, func(i, j int) bool {
		return s.roster[i].DraftNumber < s.roster[j].DraftNumber
	})

	s.logger.Info("roster imported", slog.Int("roster_size", len(s.roster)))
	return len(s.roster), nil
}
