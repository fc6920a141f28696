// Package display renders roster state for the terminal. It only
// consumes the service's read surface; nothing here mutates state.
package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fantasydraft/draftpick/models"
	"github.com/fantasydraft/draftpick/services"
)

// RenderRoster writes the roster as an aligned table, one row per
// participant, in the order given (the service already sorts by draft
// number).
func RenderRoster(w io.Writer, roster []models.Participant) error {
	if len(roster) == 0 {
		_, err := fmt.Fprintln(w, "No draft numbers assigned yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "PICK\tNAME\tJOINED")
	for _, p := range roster {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.DraftNumber, p.Name, p.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

// RenderStatus writes the "n/10 players" line plus the capacity
// warning once the roster crosses the warning threshold.
func RenderStatus(w io.Writer, st services.Status) error {
	if _, err := fmt.Fprintf(w, "%d/%d players\n", st.Size, st.Capacity); err != nil {
		return err
	}
	switch {
	case st.Full:
		_, err := fmt.Fprintln(w, "Roster is full. No more draft numbers can be assigned.")
		return err
	case st.Warn:
		_, err := fmt.Fprintf(w, "Only %d spot(s) left.\n", st.Capacity-st.Size)
		return err
	}
	return nil
}

// RenderAssignment writes the success line for a fresh allocation.
func RenderAssignment(w io.Writer, p models.Participant) error {
	_, err := fmt.Fprintf(w, "%s drew pick #%d\n", p.Name, p.DraftNumber)
	return err
}
