package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fantasydraft/draftpick/display"
)

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the roster sorted by draft number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp(cmd.Context())
			if err != nil {
				fail(err)
			}
			defer a.Close()

			roster, err := a.service.List(cmd.Context())
			if err != nil {
				fail(err)
			}
			if err := display.RenderRoster(os.Stdout, roster); err != nil {
				fail(err)
			}
		},
	}
}

func statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show roster occupancy",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp(cmd.Context())
			if err != nil {
				fail(err)
			}
			defer a.Close()

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
