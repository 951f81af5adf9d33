// Package schema defines the static metadata catalog: the sections and
// fields expected for each media type, along with presentation hints such
// as section colors, enumerated value options, long-text flags, and
// creation-time default values.
//
// The catalog is compiled in and read-only. Accessors return deep copies so
// callers can never mutate catalog state through a returned section.
package schema
