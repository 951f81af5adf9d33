// Command sidecar is a metadata-capture tool for archival media. It creates
// schema-shaped metadata records for media files, persists them as XML
// sidecar documents, and supports keyword search and tabular export across
// a folder of records.
package main
