package export

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// CSV renders the report rows as CSV, header first.
func CSV(rows []Row) string {
	tw := table.NewWriter()

	header := make(table.Row, len(reportHeader))
	for i, name := range reportHeader {
		header[i] = name
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		cells := row.cells()
		r := make(table.Row, len(cells))
		for i, cell := range cells {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	return tw.RenderCSV()
}
