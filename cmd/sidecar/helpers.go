package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"sidecar/internal/record"
	"sidecar/internal/schema"
	"sidecar/internal/search"
)

// parseFilterSpec parses a "Section:Field=keyword" flag value into a filter.
func parseFilterSpec(spec string) (search.Filter, error) {
	key, keyword, found := strings.Cut(spec, "=")
	if !found {
		return search.Filter{}, fmt.Errorf("filter %q must look like Section:Field=keyword", spec)
	}
	section, field, found := strings.Cut(key, ":")
	if !found || strings.TrimSpace(section) == "" || strings.TrimSpace(field) == "" {
		return search.Filter{}, fmt.Errorf("filter key %q must look like Section:Field", key)
	}
	return search.Filter{
		Section: strings.TrimSpace(section),
		Field:   strings.TrimSpace(field),
		Keyword: keyword,
	}, nil
}

func parseFilterSpecs(specs []string) ([]search.Filter, error) {
	filters := make([]search.Filter, 0, len(specs))
	for _, spec := range specs {
		filter, err := parseFilterSpec(spec)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter)
	}
	return filters, nil
}

// inferMediaType guesses the media type from a file extension, defaulting
// to video when the extension belongs to no known type.
func inferMediaType(mediaPath string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(mediaPath)), ".")
	if ext != "" {
		for _, mediaType := range schema.MediaTypes() {
			for _, candidate := range schema.Extensions(mediaType) {
				if candidate == ext {
					return mediaType
				}
			}
		}
	}
	return "video"
}

// jsonRecord is the JSON envelope shape for a record.
type jsonRecord struct {
	Path      string        `json:"path,omitempty"`
	Title     string        `json:"title"`
	MediaType string        `json:"mediaType"`
	MediaPath string        `json:"mediaPath,omitempty"`
	Sections  []jsonSection `json:"sections"`
}

type jsonSection struct {
	Name   string      `json:"name"`
	Color  string      `json:"color,omitempty"`
	Fields []jsonField `json:"fields"`
}

type jsonField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func recordToJSON(path string, rec *record.Record) jsonRecord {
	out := jsonRecord{
		Path:      path,
		Title:     rec.Title,
		MediaType: rec.MediaType,
		MediaPath: rec.MediaPath,
	}
	for _, section := range rec.Sections {
		js := jsonSection{Name: section.Name, Color: section.Color}
		for _, name := range section.FieldNames() {
			js.Fields = append(js.Fields, jsonField{Name: name, Value: section.Field(name)})
		}
		out.Sections = append(out.Sections, js)
	}
	return out
}
