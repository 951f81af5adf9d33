package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"sidecar/internal/config"
	"sidecar/internal/search"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var filterFlags []string
	var matchAll bool
	var queryFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "search [folder]",
		Short: "Search sidecar documents by field filters and keywords",
		Long: "Search a folder of sidecar documents. Filters take the form\n" +
			"Section:Field=keyword and match case-insensitive substrings. With no\n" +
			"filters and no query, every document is listed. The configured\n" +
			"library directory is searched when no folder is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			folder := cfg.Paths.LibraryDir
			if len(args) == 1 {
				if folder, err = config.ExpandPath(args[0]); err != nil {
					return err
				}
			}

			filters, err := parseFilterSpecs(filterFlags)
			if err != nil {
				return err
			}

			engine := search.NewEngine(logger)
			results, err := engine.Search(folder, filters, matchAll, queryFlag)
			if err != nil {
				return err
			}

			if jsonFlag {
				out := make([]jsonRecord, 0, len(results))
				for _, res := range results {
					out = append(out, recordToJSON(res.Path, res.Record))
				}
				return writeJSON(cmd, out)
			}

			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matches found")
				return nil
			}
			rows := make([][]string, 0, len(results))
			for _, res := range results {
				rows = append(rows, []string{res.Record.Title, res.Record.MediaType, filepath.Base(res.Path)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Title", "Media Type", "File"}, rows))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&filterFlags, "filter", "f", nil, "Field filter as Section:Field=keyword (repeatable)")
	cmd.Flags().BoolVar(&matchAll, "all", false, "Require every filter to match instead of any")
	cmd.Flags().StringVarP(&queryFlag, "query", "q", "", "Free-text keyword matched against any field, title, or filename")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit matching records as JSON")
	return cmd
}
