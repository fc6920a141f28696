package repositories

import (
	"context"
	"errors"
	"testing"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/fantasydraft/draftpick/models"
)

func setupBadgerRepo(t *testing.T) RosterRepository {
	t.Helper()

	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	bdb, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("failed to open badger: %v", err)
	}
	t.Cleanup(func() { bdb.Close() })

	return NewBadgerRosterRepository(bdb)
}

func TestBadgerLoadAllEmpty(t *testing.T) {
	repo := setupBadgerRepo(t)

	roster, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(roster) != 0 {
		t.Errorf("expected empty roster, got %d records", len(roster))
	}
}

func TestBadgerInsertRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := setupBadgerRepo(t)

	bob := &models.Participant{Name: "Bob", DraftNumber: 9}
	if err := repo.Insert(ctx, bob); err != nil {
		t.Fatalf("Insert(Bob) returned error: %v", err)
	}
	if bob.ID != 1 {
		t.Errorf("first record should get id 1, got %d", bob.ID)
	}

	carl := &models.Participant{Name: "Carl", DraftNumber: 4}
	if err := repo.Insert(ctx, carl); err != nil {
		t.Fatalf("Insert(Carl) returned error: %v", err)
	}
	if carl.ID != 2 {
		t.Errorf("second record should get id 2, got %d", carl.ID)
	}

	roster, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("expected 2 records, got %d", len(roster))
	}
	for _, p := range roster {
		if p.CreatedAt.IsZero() {
			t.Errorf("record %s lost its timestamp", p.Name)
		}
	}
}

func TestBadgerConflicts(t *testing.T) {
	ctx := context.Background()
	repo := setupBadgerRepo(t)

	if err := repo.Insert(ctx, &models.Participant{Name: "Alice", DraftNumber: 3}); err != nil {
		t.Fatalf("Insert(Alice) returned error: %v", err)
	}

	err := repo.Insert(ctx, &models.Participant{Name: "ALICE", DraftNumber: 5})
	if !errors.Is(err, ErrNameConflict) {
		t.Errorf("case-variant name: expected ErrNameConflict, got %v", err)
	}

	err = repo.Insert(ctx, &models.Participant{Name: "Bob", DraftNumber: 3})
	if !errors.Is(err, ErrDraftNumberConflict) {
		t.Errorf("taken number: expected ErrDraftNumberConflict, got %v", err)
	}

	roster, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(roster) != 1 {
		t.Errorf("rejected inserts mutated the blob: %d records", len(roster))
	}
}

func TestBadgerClear(t *testing.T) {
	ctx := context.Background()
	repo := setupBadgerRepo(t)

	if err := repo.Insert(ctx, &models.Participant{Name: "Bob", DraftNumber: 1}); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	roster, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(roster) != 0 {
		t.Errorf("expected empty roster after clear, got %d records", len(roster))
	}

	// ID numbering restarts once the blob is gone.
	fresh := &models.Participant{Name: "Dana", DraftNumber: 2}
	if err := repo.Insert(ctx, fresh); err != nil {
		t.Fatalf("Insert after clear returned error: %v", err)
	}
	if fresh.ID != 1 {
		t.Errorf("expected id 1 after clear, got %d", fresh.ID)
	}
}
