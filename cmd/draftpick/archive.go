package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fantasydraft/draftpick/services"
	"github.com/fantasydraft/draftpick/storage"
)

func archiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Upload a roster snapshot to object storage",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newApp(cmd.Context())
			if err != nil {
				fail(err)
			}
			defer a.Close()

			if !a.cfg.ArchiveEnabled() {
				fail(services.ErrArchiveNotConfigured)
			}

			uploader, err := storage.NewR2Uploader(storage.R2UploaderConfig{
				AccountID:       a.cfg.R2AccountID,
				AccessKeyID:     a.cfg.R2AccessKeyID,
				SecretAccessKey: a.cfg.R2SecretAccessKey,
				BucketName:      a.cfg.R2BucketName,
				PublicBaseURL:   a.cfg.R2PublicBaseURL,
			})
			if err != nil {
				fail(err)
			}

			roster, err := a.service.List(cmd.Context())
			if err != nil {
				fail(err)
			}

			result, err := storage.UploadRosterSnapshot(cmd.Context(), uploader, roster)
			if err != nil {
				fail(err)
			}
			fmt.Printf("Snapshot archived: %s\n", result.Location)
		},
	}
}
