package record

import (
	"strings"

	"sidecar/internal/schema"
)

// Section is a named group of metadata fields within a record. Field names
// are unique within a section; insertion order is preserved so flattened
// views stay deterministic.
type Section struct {
	Name  string
	Color string

	values map[string]string
	order  []string
}

// NewSection creates an empty section with the given name and display color.
func NewSection(name, color string) *Section {
	return &Section{
		Name:   name,
		Color:  color,
		values: make(map[string]string),
	}
}

// Field returns the value for a named field, or "" when absent.
func (s *Section) Field(name string) string {
	return s.values[name]
}

// Has reports whether the section carries the named field, even if its
// value is empty.
func (s *Section) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// SetField updates a field's value, creating the field if needed.
func (s *Section) SetField(name, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[name]; !ok {
		s.order = append(s.order, name)
	}
	s.values[name] = value
}

// FieldNames returns the section's field names in insertion order.
func (s *Section) FieldNames() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of fields in the section.
func (s *Section) Len() int { return len(s.order) }

// Record is the in-memory representation of a single media item's metadata.
// Title mirrors the Administrative section's Title field; MediaPath points
// at the described media file and may be empty when unset.
type Record struct {
	Title     string
	MediaType string
	MediaPath string
	Sections  []*Section
}

// New returns a blank record for the media type, shaped by the schema
// catalog with creation-time defaults applied.
func New(mediaType string) *Record {
	rec := &Record{MediaType: mediaType}
	for _, def := range schema.Sections(mediaType) {
		section := NewSection(def.Name, def.Color)
		for _, f := range def.Fields {
			section.SetField(f.Name, f.Default)
		}
		rec.Sections = append(rec.Sections, section)
	}
	return rec
}

// Section returns the named section, matching case-insensitively, or nil.
func (r *Record) Section(name string) *Section {
	for _, section := range r.Sections {
		if strings.EqualFold(section.Name, name) {
			return section
		}
	}
	return nil
}

// SetTitle sets the record title and mirrors it into the Administrative
// section's Title field so the two copies stay consistent.
func (r *Record) SetTitle(title string) {
	r.Title = title
	if admin := r.Section("Administrative"); admin != nil {
		admin.SetField("Title", title)
	}
}

// Key builds the composite "Section:Field" key used by flattened lookups.
func Key(section, field string) string {
	return section + ":" + field
}

// Flatten projects every section's fields into a single map keyed by
// "Section:Field". Search and export both read records through this view.
func (r *Record) Flatten() map[string]string {
	flat := make(map[string]string)
	for _, section := range r.Sections {
		for _, name := range section.order {
			flat[Key(section.Name, name)] = section.values[name]
		}
	}
	return flat
}
