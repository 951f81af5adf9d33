// Package sidecar persists metadata records as XML sidecar documents and
// resolves where new documents live.
//
// One document describes one media item. The Store owns a repository root
// directory, derives collision-free filenames from record titles, and can
// locate the document that references a given media file. Loading a single
// document surfaces parse failures to the caller; bulk scans skip documents
// that fail to parse so one bad file never aborts a search or export.
package sidecar
