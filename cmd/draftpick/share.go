package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func shareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "share",
		Short: "Print the roster as a signed shareable token",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp(cmd.Context())
			if err != nil {
				fail(err)
			}
			defer a.Close()

			token, err := a.service.Share(cmd.Context())
			if err != nil {
				fail(err)
			}
			fmt.Println(token)
		},
	}
}

func importCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <token>",
		Short: "Replace the roster with the one from a share token",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp(cmd.Context())
			if err != nil {
				fail(err)
			}
			defer a.Close()

			size, err := a.service.Import(cmd.Context(), args[0], yes)
			if err != nil {
				fail(err)
			}
			fmt.Printf("Imported roster with %d participant(s).\n", size)
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm replacing the current roster")
	return cmd
}
