package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fantasydraft/draftpick/models"
)

type sqliteRosterRepository struct {
	db *sql.DB
}

// NewSQLiteRosterRepository returns the embedded-database backend.
// Same table shape and constraints as postgres; timestamps are stored
// as unix seconds to keep scanning driver-independent.
func NewSQLiteRosterRepository(db *sql.DB) RosterRepository {
	return &sqliteRosterRepository{db: db}
}

func (r *sqliteRosterRepository) LoadAll(ctx context.Context) ([]*models.Participant, error) {
	query := `SELECT id, name, draft_number, created_at FROM participants ORDER BY draft_number ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	defer rows.Close()

	roster := make([]*models.Participant, 0, models.PoolSize)
	for rows.Next() {
		var p models.Participant
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Name, &p.DraftNumber, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		p.CreatedAt = time.Unix(createdAt, 0).UTC()
		roster = append(roster, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}
	return roster, nil
}

func (r *sqliteRosterRepository) Insert(ctx context.Context, p *models.Participant) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	query := `INSERT INTO participants (name, draft_number, created_at) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, p.Name, p.DraftNumber, p.CreatedAt.Unix())
	if err != nil {
		if conflictErr := mapSQLiteUniqueViolation(err); conflictErr != nil {
			return conflictErr
		}
		return fmt.Errorf("failed to insert participant: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted participant id: %w", err)
	}
	p.ID = int(id)
	return nil
}

func (r *sqliteRosterRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM participants`); err != nil {
		return fmt.Errorf("failed to clear roster: %w", err)
	}
	return nil
}

// mapSQLiteUniqueViolation translates the driver's unique-constraint
// errors into domain errors. modernc.org/sqlite surfaces these as
// plain error strings, so matching on the message is the only option.
func mapSQLiteUniqueViolation(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") && !strings.Contains(msg, "2067") {
		return nil
	}
	if strings.Contains(msg, "draft_number") {
		return ErrDraftNumberConflict
	}
	return ErrNameConflict
}
