package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fantasydraft/draftpick/models"
	"github.com/fantasydraft/draftpick/services"
)

func TestRenderRosterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderRoster(&buf, nil); err != nil {
		t.Fatalf("RenderRoster returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "No draft numbers assigned yet") {
		t.Errorf("unexpected empty-roster output: %q", buf.String())
	}
}

func TestRenderRosterTable(t *testing.T) {
	roster := []models.Participant{
		{ID: 1, Name: "Carl", DraftNumber: 2, CreatedAt: time.Now()},
		{ID: 2, Name: "Bob", DraftNumber: 7, CreatedAt: time.Now()},
	}

	var buf bytes.Buffer
	if err := RenderRoster(&buf, roster); err != nil {
		t.Fatalf("RenderRoster returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"PICK", "NAME", "JOINED", "Carl", "Bob"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Carl") > strings.Index(out, "Bob") {
		t.Error("rows not rendered in given order")
	}
}

func TestRenderStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   services.Status
		contains []string
		excludes []string
	}{
		{
			"plenty of room",
			services.Status{Size: 3, Capacity: 10},
			[]string{"3/10 players"},
			[]string{"spot", "full"},
		},
		{
			"warning threshold",
			services.Status{Size: 8, Capacity: 10, Warn: true},
			[]string{"8/10 players", "2 spot(s) left"},
			[]string{"full"},
		},
		{
			"full",
			services.Status{Size: 10, Capacity: 10, Full: true},
			[]string{"10/10 players", "full"},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := RenderStatus(&buf, tt.status); err != nil {
				t.Fatalf("RenderStatus returned error: %v", err)
			}
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(out, unwanted) {
					t.Errorf("output should not contain %q:\n%s", unwanted, out)
				}
			}
		})
	}
}
