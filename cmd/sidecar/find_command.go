package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sidecar/internal/config"
)

func newFindCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "find <media-file>",
		Short: "Locate the sidecar document describing a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := ctx.openStore()
			if err != nil {
				return err
			}

			mediaPath, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			path, rec, err := store.FindByMediaPath(mediaPath)
			if err != nil {
				return err
			}
			if rec == nil {
				if jsonFlag {
					return writeJSON(cmd, map[string]any{"found": false})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "No sidecar document references %s\n", mediaPath)
				fmt.Fprintln(cmd.OutOrStdout(), "Run 'sidecar new --media' to create one")
				return nil
			}

			if jsonFlag {
				return writeJSON(cmd, recordToJSON(path, rec))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%q, %s)\n", path, rec.Title, rec.MediaType)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the result as JSON")
	return cmd
}
