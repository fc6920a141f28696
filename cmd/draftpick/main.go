package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fantasydraft/draftpick/models"
	"github.com/fantasydraft/draftpick/services"
	"github.com/fantasydraft/draftpick/sharetoken"
)

const programName = "draftpick"

var globalFlags = struct {
	debug bool
}{}

// commonRun configures the process logger. Diagnostics go to stderr as
// JSON so stdout stays clean for roster output.
func commonRun() *slog.Logger {
	logLevel := slog.LevelWarn
	if globalFlags.debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(
		slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}),
	)
	slog.SetDefault(logger)
	return logger
}

// fail prints a user-facing message for the error and exits. The
// mapping mirrors the service error taxonomy; anything unrecognized is
// reported as-is.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", programName, userMessage(err))
	os.Exit(1)
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrNameRequired):
		return "a participant name is required"
	case errors.Is(err, services.ErrNameAlreadyAssigned):
		return "that name already has a draft number"
	case errors.Is(err, services.ErrRosterFull):
		return fmt.Sprintf("the roster is full (%d/%d players)", models.PoolSize, models.PoolSize)
	case errors.Is(err, services.ErrNotConfirmed):
		return "this is irreversible; re-run with --yes to confirm"
	case errors.Is(err, services.ErrInvalidShareToken),
		errors.Is(err, sharetoken.ErrInvalidToken),
		errors.Is(err, sharetoken.ErrInvalidRoster):
		return "the share token is invalid: " + err.Error()
	case errors.Is(err, services.ErrArchiveNotConfigured):
		return "snapshot archiving is not configured (set the R2_* environment variables)"
	default:
		return err.Error()
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   programName,
		Short: "Assign unique fantasy draft positions",
		Long: `draftpick hands each participant a unique random draft position from
the fixed pool 1-10, persists the roster, and renders it. Storage is
pluggable: an embedded sqlite table, a local key-value blob, a plain
postgres table, or a signed shareable token.`,
	}
	rootCmd.PersistentFlags().BoolVar(&globalFlags.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		joinCommand(),
		listCommand(),
		statusCommand(),
		clearCommand(),
		shareCommand(),
		importCommand(),
		archiveCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
