// Package textutil provides text processing utilities for filename
// derivation.
//
// Sidecar documents are named after the record title they hold, so the
// sanitizer keeps only characters that are safe and readable in a filename:
// letters, digits, hyphens, and underscores. Whitespace runs collapse to a
// single underscore and the result is lowercased.
package textutil
