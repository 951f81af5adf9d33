// Package record holds the in-memory model for one media item's metadata
// and the normalizer that reconciles a record against the current schema.
//
// A Record is an ordered list of named sections, each mapping field names to
// string values. Records are created blank from the schema catalog or loaded
// from sidecar documents; the normalizer brings a stale record's shape up to
// date without ever deleting a field value.
package record
