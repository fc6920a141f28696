package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func clearCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the roster (irreversible)",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp(cmd.Context())
			if err != nil {
				fail(err)
			}
			defer a.Close()

			if err := a.service.Clear(cmd.Context(), yes); err != nil {
				fail(err)
			}
			fmt.Println("Roster cleared.")
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm clearing the roster")
	return cmd
}
