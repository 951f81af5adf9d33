package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sidecar/internal/config"
	"sidecar/internal/record"
	"sidecar/internal/sidecar"
)

type assignment struct {
	Section string
	Field   string
	Value   string
}

// parseAssignment parses a "Section:Field=value" argument.
func parseAssignment(arg string) (assignment, error) {
	key, value, found := strings.Cut(arg, "=")
	if !found {
		return assignment{}, fmt.Errorf("assignment %q must look like Section:Field=value", arg)
	}
	section, field, found := strings.Cut(key, ":")
	if !found || strings.TrimSpace(section) == "" || strings.TrimSpace(field) == "" {
		return assignment{}, fmt.Errorf("assignment key %q must look like Section:Field", key)
	}
	return assignment{
		Section: strings.TrimSpace(section),
		Field:   strings.TrimSpace(field),
		Value:   value,
	}, nil
}

func newSetCommand(ctx *commandContext) *cobra.Command {
	var titleFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "set <document> [Section:Field=value ...]",
		Short: "Update fields in a sidecar document",
		Long: "Update a sidecar document in place. Each positional assignment\n" +
			"sets one field; the document is normalized against the current\n" +
			"schema before the write, so retired fields keep their values.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := ctx.openStore()
			if err != nil {
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
			record.Normalize(rec)

			for _, arg := range args[1:] {
				set, err := parseAssignment(arg)
				if err != nil {
					return err
				}
				section := rec.Section(set.Section)
				if section == nil {
					return fmt.Errorf("record has no section %q", set.Section)
				}
				section.SetField(set.Field, set.Value)
			}
			if strings.TrimSpace(titleFlag) != "" {
				rec.SetTitle(strings.TrimSpace(titleFlag))
			}

			written, err := store.Save(rec, path)
			if err != nil {
				return err
			}

			if jsonFlag {
				return writeJSON(cmd, recordToJSON(written, rec))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVar(&titleFlag, "title", "", "Replace the record title")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit the updated record as JSON")
	return cmd
}
