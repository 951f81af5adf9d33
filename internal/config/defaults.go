package config

const (
	defaultLibraryDir     = "~/.local/share/sidecar/metadata"
	defaultLogDir         = "~/.local/share/sidecar/logs"
	defaultExportDir      = "~/.local/share/sidecar/exports"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultExportWorkbook = "metadata_export.xlsx"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
			ExportDir:  defaultExportDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Export: Export{
			Workbook: defaultExportWorkbook,
		},
	}
}
