package repositories

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/fantasydraft/draftpick/db"
	"github.com/fantasydraft/draftpick/models"
)

// Postgres tests need a live server; point DRAFTPICK_TEST_DATABASE_URL
// at one to enable them.
func setupPostgresRepo(t *testing.T) RosterRepository {
	t.Helper()

	dsn := os.Getenv("DRAFTPICK_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("DRAFTPICK_TEST_DATABASE_URL not set")
	}

	conn, err := db.ConnectPostgres(dsn, 5*time.Second)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	ctx := context.Background()
	if _, err := conn.ExecContext(ctx, `DROP TABLE IF EXISTS participants`); err != nil {
		t.Fatalf("failed to drop participants table: %v", err)
	}
	if err := db.CreatePostgresSchema(ctx, conn); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return NewPostgresRosterRepository(conn)
}

func TestPostgresInsertAndLoadAll(t *testing.T) {
	ctx := context.Background()
	repo := setupPostgresRepo(t)

	bob := &models.Participant{Name: "Bob", DraftNumber: 7}
	if err := repo.Insert(ctx, bob); err != nil {
		t.Fatalf("Insert(Bob) returned error: %v", err)
	}
	if bob.ID == 0 || bob.CreatedAt.IsZero() {
		t.Errorf("Insert did not populate id/timestamp: %+v", bob)
	}

	if err := repo.Insert(ctx, &models.Participant{Name: "Carl", DraftNumber: 2}); err != nil {
		t.Fatalf("Insert(Carl) returned error: %v", err)
	}

	roster, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(roster) != 2 || roster[0].Name != "Carl" || roster[1].Name != "Bob" {
		t.Errorf("unexpected roster order/content: %+v", roster)
	}
}

func TestPostgresConflictsAndClear(t *testing.T) {
	ctx := context.Background()
	repo := setupPostgresRepo(t)

	if err := repo.Insert(ctx, &models.Participant{Name: "Alice", DraftNumber: 1}); err != nil {
		t.Fatalf("Insert(Alice) returned error: %v", err)
	}

	err := repo.Insert(ctx, &models.Participant{Name: "alice", DraftNumber: 2})
	if !errors.Is(err, ErrNameConflict) {
		t.Errorf("case-variant name: expected ErrNameConflict, got %v", err)
	}

	err = repo.Insert(ctx, &models.Participant{Name: "Bob", DraftNumber: 1})
	if !errors.Is(err, ErrDraftNumberConflict) {
		t.Errorf("taken number: expected ErrDraftNumberConflict, got %v", err)
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
}
