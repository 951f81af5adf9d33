package sidecar

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sidecar/internal/config"
	"sidecar/internal/logging"
	"sidecar/internal/record"
	"sidecar/internal/textutil"
)

// Store manages the repository of sidecar documents under a root directory.
type Store struct {
	root   string
	logger *slog.Logger
}

// Open creates a store rooted at the configured library directory, creating
// it if needed.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return New(cfg.Paths.LibraryDir, logger), nil
}

// New creates a store rooted at an explicit directory. The directory is not
// created until the first save.
func New(root string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{root: root, logger: logger}
}

// Root returns the repository root directory.
func (s *Store) Root() string { return s.root }

// Save persists the record and returns the path written. With a path hint
// the document is written there, updating in place; otherwise a filename is
// derived from the record's media type and title, never overwriting a
// different record.
func (s *Store) Save(rec *record.Record, pathHint string) (string, error) {
	if strings.TrimSpace(rec.Title) == "" {
		return "", Wrap(ErrValidation, "save", "record title is required", nil)
	}
	if strings.TrimSpace(rec.MediaPath) == "" {
		return "", Wrap(ErrValidation, "save", "record media path is required", nil)
	}

	path := strings.TrimSpace(pathHint)
	if path == "" {
		if err := os.MkdirAll(s.root, 0o755); err != nil {
			return "", fmt.Errorf("create repository root %q: %w", s.root, err)
		}
		path = s.derivePath(rec)
	}

	data, err := xml.MarshalIndent(encodeRecord(rec), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	payload := append([]byte(xml.Header), data...)
	payload = append(payload, '\n')

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write sidecar document: %w", err)
	}
	s.logger.Info("sidecar document saved",
		slog.String("path", path),
		slog.String("title", rec.Title),
		slog.String("media_type", rec.MediaType))
	return path, nil
}

// derivePath builds a collision-free document path from the record's media
// type and sanitized title.
func (s *Store) derivePath(rec *record.Record) string {
	base := textutil.SanitizeTypeToken(rec.MediaType) + "_" + textutil.SanitizeTitleToken(rec.Title)
	candidate := filepath.Join(s.root, base+".xml")
	suffix := 1
	for {
		if _, err := os.Stat(candidate); err != nil {
			return candidate
		}
		candidate = filepath.Join(s.root, fmt.Sprintf("%s_%d.xml", base, suffix))
		suffix++
	}
}

// FindByMediaPath scans the repository for the first document whose stored
// media path resolves to the same absolute path as the target. Malformed
// documents are skipped. Returns a nil record when nothing matches.
func (s *Store) FindByMediaPath(mediaPath string) (string, *record.Record, error) {
	target, err := filepath.Abs(mediaPath)
	if err != nil {
		return "", nil, fmt.Errorf("resolve media path: %w", err)
	}

	paths, err := ListDocuments(s.root)
	if err != nil {
		return "", nil, err
	}
	for _, path := range paths {
		rec, err := Load(path)
		if err != nil {
			s.logger.Debug("skipping unreadable sidecar document",
				slog.String("path", path), logging.Error(err))
			continue
		}
		if rec.MediaPath == "" {
			continue
		}
		stored, err := filepath.Abs(rec.MediaPath)
		if err != nil {
			continue
		}
		if stored == target {
			return path, rec, nil
		}
	}
	return "", nil, nil
}

// Load parses a single sidecar document. Malformed or unreadable documents
// fail with an error tagged ErrParse.
func Load(path string) (*record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, Wrap(ErrParse, "load", fmt.Sprintf("read %s", path), err)
	}
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, Wrap(ErrParse, "load", fmt.Sprintf("decode %s", path), err)
	}
	return decodeRecord(doc), nil
}

// ListDocuments returns the sidecar document paths directly inside folder in
// lexicographic order. A missing folder yields an empty list, not an error.
func ListDocuments(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read folder %q: %w", folder, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}
		paths = append(paths, filepath.Join(folder, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
