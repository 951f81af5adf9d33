// Package export flattens collections of metadata records into tabular
// reports.
//
// Each record contributes one row per field, annotated with its section's
// display color. Reports can be written as an Excel workbook (section color
// applied as a cell fill) or as CSV.
package export
