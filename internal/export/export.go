package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sidecar/internal/logging"
	"sidecar/internal/search"
)

// Row is one line of the flattened report: a single field of a single
// record, annotated with the section it came from and that section's color.
type Row struct {
	File      string
	Title     string
	MediaType string
	Section   string
	Color     string
	Field     string
	Value     string
}

// Exporter builds tabular reports from folders of sidecar documents.
type Exporter struct {
	engine *search.Engine
	logger *slog.Logger
}

// New creates an exporter that re-reads documents through the given search
// engine. A nil logger is replaced with a no-op.
func New(engine *search.Engine, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Exporter{engine: engine, logger: logger}
}

// ExportFolder flattens every loadable document in folder into a report at
// destination. The format follows the destination extension: .xlsx or .csv.
// Returns the path written.
func (e *Exporter) ExportFolder(folder, destination string) (string, error) {
	results, err := e.engine.Search(folder, nil, true, "")
	if err != nil {
		return "", err
	}
	rows := Rows(results)

	if dir := filepath.Dir(destination); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create export directory %q: %w", dir, err)
		}
	}

	switch ext := strings.ToLower(filepath.Ext(destination)); ext {
	case ".xlsx":
		err = WriteXLSX(rows, destination)
	case ".csv":
		err = os.WriteFile(destination, []byte(CSV(rows)), 0o644)
	default:
		return "", fmt.Errorf("unsupported export format %q (use .xlsx or .csv)", ext)
	}
	if err != nil {
		return "", err
	}

	e.logger.Info("export written",
		slog.String("destination", destination),
		slog.Int("records", len(results)),
		slog.Int("rows", len(rows)))
	return destination, nil
}

// Rows flattens search results into report rows, one per field, walking
// sections and fields in record order.
func Rows(results []search.Result) []Row {
	var rows []Row
	for _, res := range results {
		file := filepath.Base(res.Path)
		for _, section := range res.Record.Sections {
			for _, name := range section.FieldNames() {
				rows = append(rows, Row{
					File:      file,
					Title:     res.Record.Title,
					MediaType: res.Record.MediaType,
					Section:   section.Name,
					Color:     section.Color,
					Field:     name,
					Value:     section.Field(name),
				})
			}
		}
	}
	return rows
}

var reportHeader = []string{"File", "Title", "Media Type", "Section", "Section Color", "Field", "Value"}

func (r Row) cells() []string {
	return []string{r.File, r.Title, r.MediaType, r.Section, r.Color, r.Field, r.Value}
}
