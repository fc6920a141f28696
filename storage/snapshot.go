package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fantasydraft/draftpick/models"
)

type rosterSnapshot struct {
	TakenAt time.Time            `json:"taken_at"`
	Size    int                  `json:"size"`
	Roster  []models.Participant `json:"roster"`
}

// UploadRosterSnapshot marshals the roster and uploads it as a
// timestamped JSON object.
func UploadRosterSnapshot(ctx context.Context, uploader SnapshotUploader, roster []models.Participant) (*UploadResult, error) {
	takenAt := time.Now().UTC()
	snapshot := rosterSnapshot{
		TakenAt: takenAt,
		Size:    len(roster),
		Roster:  roster,
	}

	encoded, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roster snapshot: %w", err)
	}

	key := fmt.Sprintf("snapshots/roster-%s.json", takenAt.Format("20060102T150405Z"))
	result, err := uploader.Upload(ctx, key, "application/json", bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to upload roster snapshot: %w", err)
	}
	return result, nil
}
