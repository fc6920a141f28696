package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema bootstrap for the structured-table backends. Safe to run more
// than once; everything uses IF NOT EXISTS.
//
// Uniqueness of both the draft number and the case-folded name is
// enforced by the database itself, so the duplicate check is atomic
// with the insert even if a second writer ever shows up.

const postgresParticipantSchema = `
CREATE TABLE IF NOT EXISTS participants (
	id           SERIAL PRIMARY KEY,
	name         TEXT NOT NULL,
	draft_number INTEGER NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT participants_draft_number_key UNIQUE (draft_number),
	CONSTRAINT participants_draft_number_range CHECK (draft_number BETWEEN 1 AND 10)
);

CREATE UNIQUE INDEX IF NOT EXISTS participants_name_lower_key ON participants (LOWER(name));`

const sqliteParticipantSchema = `
CREATE TABLE IF NOT EXISTS participants (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	name         TEXT NOT NULL,
	draft_number INTEGER NOT NULL UNIQUE CHECK (draft_number BETWEEN 1 AND 10),
	created_at   INTEGER NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS participants_name_nocase_key ON participants (name COLLATE NOCASE);`

func CreatePostgresSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, postgresParticipantSchema); err != nil {
		return fmt.Errorf("failed to create participants schema: %w", err)
	}
	return nil
}

func CreateSQLiteSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, sqliteParticipantSchema); err != nil {
		return fmt.Errorf("failed to create participants schema: %w", err)
	}
	return nil
}
