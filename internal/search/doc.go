// Package search evaluates field filters and free-text queries over a
// folder of sidecar documents.
//
// The engine is stateless: every search re-reads the folder, loads each
// document, and tests the flattened record against the criteria. Documents
// that fail to parse are skipped rather than aborting the search. Matching
// is case-insensitive substring comparison using Unicode case folding.
package search
