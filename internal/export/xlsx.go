package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Metadata"

// WriteXLSX writes the report rows to an Excel workbook at path. The
// section's display color becomes a fill on the Section cell; no other
// styling is applied.
func WriteXLSX(rows []Row, path string) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for col, name := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := book.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("write header %q: %w", name, err)
		}
	}

	// One fill style per distinct section color.
	styles := map[string]int{}
	sectionColumn := 0
	for i, name := range reportHeader {
		if name == "Section" {
			sectionColumn = i + 1
		}
	}

	for i, row := range rows {
		line := i + 2
		for col, value := range row.cells() {
			cell, err := excelize.CoordinatesToCellName(col+1, line)
			if err != nil {
				return err
			}
			if err := book.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("write row %d: %w", line, err)
			}
		}
		if row.Color == "" {
			continue
		}
		styleID, ok := styles[row.Color]
		if !ok {
			var err error
			styleID, err = book.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{row.Color}},
			})
			if err != nil {
				return fmt.Errorf("build fill style for %q: %w", row.Color, err)
			}
			styles[row.Color] = styleID
		}
		cell, err := excelize.CoordinatesToCellName(sectionColumn, line)
		if err != nil {
			return err
		}
		if err := book.SetCellStyle(sheetName, cell, cell, styleID); err != nil {
			return fmt.Errorf("apply fill style: %w", err)
		}
	}

	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
