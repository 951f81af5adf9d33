package search

import (
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"

	"sidecar/internal/logging"
	"sidecar/internal/record"
	"sidecar/internal/sidecar"
)

// Filter is a single field-level criterion: the keyword must appear as a
// case-insensitive substring of the named field's value.
type Filter struct {
	Section string
	Field   string
	Keyword string
}

// Key returns the composite "Section:Field" key used for flattened lookup.
func (f Filter) Key() string {
	return record.Key(f.Section, f.Field)
}

// Result pairs a matching record with the document path it was loaded from.
type Result struct {
	Path   string
	Record *record.Record
}

// Engine runs searches over folders of sidecar documents.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates a search engine. A nil logger is replaced with a no-op.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{logger: logger}
}

// Search evaluates the filters and text query against every document in
// folder, in lexicographic path order. Filters combine with AND when
// matchAll is set, OR otherwise; a non-empty text query must additionally
// match the title, media type, filename, or any field value. With no
// filters and no query, every loadable document matches. A missing folder
// yields an empty result.
func (e *Engine) Search(folder string, filters []Filter, matchAll bool, textQuery string) ([]Result, error) {
	paths, err := sidecar.ListDocuments(folder)
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	query := fold.String(strings.TrimSpace(textQuery))

	var results []Result
	for _, path := range paths {
		rec, err := sidecar.Load(path)
		if err != nil {
			e.logger.Debug("skipping unreadable sidecar document",
				slog.String("path", path), logging.Error(err))
			continue
		}
		flat := rec.Flatten()
		if !matchesFilters(fold, flat, filters, matchAll) {
			continue
		}
		if query != "" && !matchesQuery(fold, rec, path, flat, query) {
			continue
		}
		results = append(results, Result{Path: path, Record: rec})
	}
	return results, nil
}

func matchesFilters(fold cases.Caser, flat map[string]string, filters []Filter, matchAll bool) bool {
	if len(filters) == 0 {
		return true
	}
	for _, filter := range filters {
		value := flat[filter.Key()]
		matched := strings.Contains(fold.String(value), fold.String(filter.Keyword))
		if matchAll && !matched {
			return false
		}
		if !matchAll && matched {
			return true
		}
	}
	return matchAll
}

func matchesQuery(fold cases.Caser, rec *record.Record, path string, flat map[string]string, query string) bool {
	filename := filepath.Base(path)
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	candidates := []string{rec.Title, rec.MediaType, filename, stem}
	for _, candidate := range candidates {
		if strings.Contains(fold.String(candidate), query) {
			return true
		}
	}
	for _, value := range flat {
		if strings.Contains(fold.String(value), query) {
			return true
		}
	}
	return false
}
