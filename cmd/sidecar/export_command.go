package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"sidecar/internal/config"
	"sidecar/internal/export"
	"sidecar/internal/search"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "export [folder]",
		Short: "Export a folder of sidecar documents to a tabular report",
		Long: "Flatten every sidecar document in a folder into one report with a\n" +
			"row per field, annotated with its section color. The destination\n" +
			"extension picks the format: .xlsx or .csv. The configured library\n" +
			"directory is exported when no folder is given.",
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

			destination := outFlag
			if destination == "" {
				destination = filepath.Join(cfg.Paths.ExportDir, cfg.Export.Workbook)
			} else if destination, err = config.ExpandPath(destination); err != nil {
				return err
			}

			exporter := export.New(search.NewEngine(logger), logger)
			written, err := exporter.ExportFolder(folder, destination)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Report destination (.xlsx or .csv); defaults to the configured workbook")
	return cmd
}
