package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sidecar/internal/config"
	"sidecar/internal/record"
	"sidecar/internal/sidecar"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool
	var rawFlag bool

	cmd := &cobra.Command{
		Use:   "show <document>",
		Short: "Display a sidecar document",
		Long: "Display a sidecar document's sections and fields. The record is\n" +
			"normalized against the current schema unless --raw is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}
			rec, err := sidecar.Load(path)
			if err != nil {
				return err
			}
			if !rawFlag {
				record.Normalize(rec)
			}

			if jsonFlag {
				return writeJSON(cmd, recordToJSON(path, rec))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Title:      %s\n", rec.Title)
			fmt.Fprintf(out, "Media Type: %s\n", rec.MediaType)
			if rec.MediaPath != "" {
				fmt.Fprintf(out, "Media Path: %s\n", rec.MediaPath)
			}
			for _, section := range rec.Sections {
				fmt.Fprintf(out, "\n%s\n", section.Name)
				rows := make([][]string, 0, section.Len())
				for _, name := range section.FieldNames() {
					rows = append(rows, []string{name, section.Field(name)})
				}
				fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the record as JSON")
	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Show the document as stored, without schema normalization")
	return cmd
}
