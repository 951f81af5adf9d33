package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"sidecar/internal/record"
)

// NewRecord builds a schema-shaped record with a title and a media file
// that exists on disk, ready to save.
func NewRecord(t testing.TB, mediaType, title string) *record.Record {
	t.Helper()

	mediaPath := filepath.Join(t.TempDir(), "media.bin")
	if err := os.WriteFile(mediaPath, []byte("media"), 0o644); err != nil {
		t.Fatalf("write media file: %v", err)
	}

	rec := record.New(mediaType)
	rec.SetTitle(title)
	rec.MediaPath = mediaPath
	return rec
}

// WriteFile writes contents into dir under name and returns the full path.
func WriteFile(t testing.TB, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
