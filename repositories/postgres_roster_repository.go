package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/fantasydraft/draftpick/models"
)

type postgresRosterRepository struct {
	db *sql.DB
}

// NewPostgresRosterRepository returns the structured-table backend.
// The participants table carries unique constraints on both the draft
// number and the case-folded name, so the insert is an atomic
// check-and-insert.
func NewPostgresRosterRepository(db *sql.DB) RosterRepository {
	return &postgresRosterRepository{db: db}
}

func (r *postgresRosterRepository) LoadAll(ctx context.Context) ([]*models.Participant, error) {
	query := `SELECT id, name, draft_number, created_at FROM participants ORDER BY draft_number ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	defer rows.Close()

	roster := make([]*models.Participant, 0, models.PoolSize)
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.DraftNumber, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		roster = append(roster, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}
	return roster, nil
}

func (r *postgresRosterRepository) Insert(ctx context.Context, p *models.Participant) error {
	query := `
		INSERT INTO participants (name, draft_number)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, p.Name, p.DraftNumber).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			switch pqErr.Constraint {
			case "participants_name_lower_key":
				return ErrNameConflict
			case "participants_draft_number_key":
				return ErrDraftNumberConflict
			}
		}
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

func (r *postgresRosterRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM participants`); err != nil {
		return fmt.Errorf("failed to clear roster: %w", err)
	}
	return nil
}
