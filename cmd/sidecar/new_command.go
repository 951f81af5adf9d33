package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"sidecar/internal/config"
	"sidecar/internal/record"
)

func newNewCommand(ctx *commandContext) *cobra.Command {
	var mediaFlag string
	var typeFlag string
	var titleFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a sidecar document for a media file",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := ctx.openStore()
			if err != nil {
				return err
			}

			mediaPath, err := config.ExpandPath(strings.TrimSpace(mediaFlag))
			if err != nil {
				return err
			}
			if mediaPath == "" {
				return fmt.Errorf("--media is required")
			}
			if _, err := os.Stat(mediaPath); err != nil {
				return fmt.Errorf("media file not found at %q: %w", mediaPath, err)
			}

			// A media file already described by a document gets no duplicate.
			existingPath, existing, err := store.FindByMediaPath(mediaPath)
			if err != nil {
				return err
			}
			if existing != nil {
				if jsonFlag {
					return writeJSON(cmd, recordToJSON(existingPath, existing))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Media already described by %s (%q)\n", existingPath, existing.Title)
				return nil
			}

			mediaType := strings.ToLower(strings.TrimSpace(typeFlag))
			if mediaType == "" {
				mediaType = inferMediaType(mediaPath)
			}

			rec := record.New(mediaType)
			rec.MediaPath = mediaPath

			title := strings.TrimSpace(titleFlag)
			if title == "" {
				title = record.DeriveTitle(mediaPath)
			}
			rec.SetTitle(title)

			if admin := rec.Section("Administrative"); admin != nil && admin.Field("Identifier") == "" {
				admin.SetField("Identifier", uuid.NewString())
			}
			if desc := rec.Section("Descriptive"); desc != nil && desc.Field("Identifier") == "" {
				stem := filepath.Base(mediaPath)
				desc.SetField("Identifier", strings.TrimSuffix(stem, filepath.Ext(stem)))
			}

			path, err := store.Save(rec, "")
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, recordToJSON(path, rec))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mediaFlag, "media", "m", "", "Path to the media file the record describes")
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "Media type (video, audio, image); inferred from the file extension when omitted")
	cmd.Flags().StringVar(&titleFlag, "title", "", "Record title; derived from the media filename when omitted")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the created record as JSON")
	_ = cmd.MarkFlagRequired("media")
	return cmd
}
