package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fantasydraft/draftpick/display"
)

func joinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "join <name>",
		Short: "Assign a random draft number to a participant",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp(cmd.Context())
			if err != nil {
				fail(err)
			}
			defer a.Close()

			p, err := a.service.Join(cmd.Context(), args[0])
			if err != nil {
				fail(err)
			}
			if err := display.RenderAssignment(os.Stdout, *p); err != nil {
				fail(err)
			}

			st, err := a.service.Status(cmd.Context())
			if err != nil {
				fail(err)
			}
			if err := display.RenderStatus(os.Stdout, st); err != nil {
				fail(err)
			}
		},
	}
}
