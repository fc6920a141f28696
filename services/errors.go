package services

import "errors"

// Errors surfaced by the roster service. All of them are non-fatal:
// a failed attempt mutates nothing and the next request starts fresh.
var (
	// Validation: the caller supplied an empty or blank name.
	ErrNameRequired = errors.New("participant name is required")

	// The name already holds a draft number (case-insensitive match).
	ErrNameAlreadyAssigned = errors.New("name already has a draft number")

	// The roster is at capacity; no further numbers can be assigned.
	ErrRosterFull = errors.New("roster is full")

	// Clear and import are irreversible and refuse to run without
	// explicit caller confirmation.
	ErrNotConfirmed = errors.New("operation requires explicit confirmation")

	// The supplied share token failed verification or carries a
	// roster that breaks the draft invariants.
	ErrInvalidShareToken = errors.New("invalid share token")

	// The used-number index and the roster size fell out of lockstep.
	// Should be unreachable; if it fires, state is corrupt.
	ErrInvariantViolation = errors.New("roster invariant violation")

	// Snapshot archiving was requested without archive configuration.
	ErrArchiveNotConfigured = errors.New("snapshot archive storage is not configured")
)
