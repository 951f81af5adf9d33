package schema

import "strings"

// Field describes a single metadata field within a section.
type Field struct {
	Name string
	// Default is applied when a brand-new record is created. Normalization
	// of existing records always fills missing fields with empty strings
	// instead, so a deliberately blanked value is never clobbered.
	Default string
	// LongText hints that the field holds free prose rather than a token.
	LongText bool
	// Options enumerates allowed values when the field is a pick list.
	Options []string
}

// Section describes a named group of fields with a display color used by
// reports and exports.
type Section struct {
	Name   string
	Color  string
	Fields []Field
}

// FieldPair identifies a field by its section, the composite key shape used
// by search filters.
type FieldPair struct {
	Section string
	Field   string
}

// MediaTypes lists the media type tags with a dedicated schema, in
// catalog order.
func MediaTypes() []string {
	return []string{"video", "audio", "image"}
}

// Sections returns a deep copy of the section definitions for the given
// media type. Unknown media types fall back to the video/audio layout.
func Sections(mediaType string) []Section {
	defs, ok := catalog[strings.ToLower(strings.TrimSpace(mediaType))]
	if !ok {
		defs = videoAudioSections
	}
	out := make([]Section, len(defs))
	for i, def := range defs {
		fields := make([]Field, len(def.Fields))
		for j, f := range def.Fields {
			fields[j] = f
			if len(f.Options) > 0 {
				fields[j].Options = append([]string(nil), f.Options...)
			}
		}
		out[i] = Section{Name: def.Name, Color: def.Color, Fields: fields}
	}
	return out
}

// AllFieldPairs returns every unique (section, field) pair across all known
// media types, de-duplicated by first occurrence. Search filter pickers are
// populated from this list.
func AllFieldPairs() []FieldPair {
	seen := map[FieldPair]struct{}{}
	var pairs []FieldPair
	for _, mediaType := range MediaTypes() {
		for _, section := range catalog[mediaType] {
			for _, field := range section.Fields {
				pair := FieldPair{Section: section.Name, Field: field.Name}
				if _, ok := seen[pair]; ok {
					continue
				}
				seen[pair] = struct{}{}
				pairs = append(pairs, pair)
			}
		}
	}
	return pairs
}

// Extensions lists the media file extensions associated with a media type,
// without dots. Unknown types return nil.
func Extensions(mediaType string) []string {
	exts, ok := mediaExtensions[strings.ToLower(strings.TrimSpace(mediaType))]
	if !ok {
		return nil
	}
	return append([]string(nil), exts...)
}

var mediaExtensions = map[string][]string{
	"video": {"mp4", "mov", "avi", "mkv", "m4v"},
	"audio": {"mp3", "wav", "aac", "flac", "m4a"},
	"image": {"jpg", "jpeg", "png", "tif", "tiff", "bmp"},
}
