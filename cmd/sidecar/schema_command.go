package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sidecar/internal/schema"
)

func newSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect the metadata schema catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newSchemaSectionsCommand())
	cmd.AddCommand(newSchemaFieldsCommand())
	return cmd
}

func newSchemaSectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sections [media-type]",
		Short: "List the schema sections and fields for a media type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaType := "video"
			if len(args) == 1 {
				mediaType = args[0]
			}

			out := cmd.OutOrStdout()
			for _, section := range schema.Sections(mediaType) {
				fmt.Fprintf(out, "\n%s (%s)\n", section.Name, section.Color)
				rows := make([][]string, 0, len(section.Fields))
				for _, field := range section.Fields {
					notes := ""
					if len(field.Options) > 0 {
						notes = strings.Join(field.Options, ", ")
					} else if field.LongText {
						notes = "free text"
					}
					rows = append(rows, []string{field.Name, field.Default, notes})
				}
				fmt.Fprintln(out, renderTable([]string{"Field", "Default", "Notes"}, rows))
			}
			return nil
		},
	}
}

func newSchemaFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List every section:field pair usable in search filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, pair := range schema.AllFieldPairs() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:%s\n", pair.Section, pair.Field)
			}
			return nil
		},
	}
}
