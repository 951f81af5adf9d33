package export_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"sidecar/internal/export"
	"sidecar/internal/search"
	"sidecar/internal/sidecar"
	"sidecar/internal/testsupport"
)

func newLibrary(t *testing.T) string {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store, err := sidecar.Open(cfg, nil)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	rec := testsupport.NewRecord(t, "video", "Cairo Street Scenes")
	rec.Section("Descriptive").SetField("KeyWords", "street, market")
	if _, err := store.Save(rec, ""); err != nil {
		t.Fatalf("save record: %v", err)
	}
	return store.Root()
}

func TestRowsOnePerFieldWithSectionColor(t *testing.T) {
	folder := newLibrary(t)
	engine := search.NewEngine(nil)
	results, err := engine.Search(folder, nil, true, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	rows := export.Rows(results)
	fieldCount := 0
	for _, section := range results[0].Record.Sections {
		fieldCount += section.Len()
	}
	if len(rows) != fieldCount {
		t.Fatalf("expected %d rows, got %d", fieldCount, len(rows))
	}

	var found bool
	for _, row := range rows {
		if row.Section == "Descriptive" && row.Field == "KeyWords" {
			found = true
			if row.Value != "street, market" {
				t.Fatalf("row value %q", row.Value)
			}
			if row.Color != "#9370DB" {
				t.Fatalf("row color %q", row.Color)
			}
			if row.Title != "Cairo Street Scenes" {
				t.Fatalf("row title %q", row.Title)
			}
		}
	}
	if !found {
		t.Fatal("missing Descriptive:KeyWords row")
	}
}

func TestCSVContainsHeaderAndValues(t *testing.T) {
	folder := newLibrary(t)
	engine := search.NewEngine(nil)
	results, err := engine.Search(folder, nil, true, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	out := export.CSV(export.Rows(results))
	if !strings.Contains(out, "File,Title,Media Type,Section,Section Color,Field,Value") {
		t.Fatalf("missing header in CSV:\n%s", out)
	}
	if !strings.Contains(out, "street, market") && !strings.Contains(out, `"street, market"`) {
		t.Fatalf("missing field value in CSV:\n%s", out)
	}
}

func TestExportFolderWritesWorkbook(t *testing.T) {
	folder := newLibrary(t)
	exporter := export.New(search.NewEngine(nil), nil)

	dest := filepath.Join(t.TempDir(), "report.xlsx")
	written, err := exporter.ExportFolder(folder, dest)
	if err != nil {
		t.Fatalf("ExportFolder returned error: %v", err)
	}
	if written != dest {
		t.Fatalf("written path %q, want %q", written, dest)
	}

	book, err := excelize.OpenFile(dest)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer book.Close()

	header, err := book.GetCellValue("Metadata", "A1")
	if err != nil {
		t.Fatalf("read header cell: %v", err)
	}
	if header != "File" {
		t.Fatalf("header cell %q", header)
	}
	title, err := book.GetCellValue("Metadata", "B2")
	if err != nil {
		t.Fatalf("read title cell: %v", err)
	}
	if title != "Cairo Street Scenes" {
		t.Fatalf("title cell %q", title)
	}
}

func TestExportFolderWritesCSV(t *testing.T) {
	folder := newLibrary(t)
	exporter := export.New(search.NewEngine(nil), nil)

	dest := filepath.Join(t.TempDir(), "report.csv")
	if _, err := exporter.ExportFolder(folder, dest); err != nil {
		t.Fatalf("ExportFolder returned error: %v", err)
	}
}

func TestExportFolderRejectsUnknownFormat(t *testing.T) {
	folder := newLibrary(t)
	exporter := export.New(search.NewEngine(nil), nil)

	if _, err := exporter.ExportFolder(folder, filepath.Join(t.TempDir(), "report.pdf")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
