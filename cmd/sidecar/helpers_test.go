package main

import (
	"testing"
)

func TestParseFilterSpec(t *testing.T) {
	filter, err := parseFilterSpec("Administrative:QC Status=approved")
	if err != nil {
		t.Fatalf("parseFilterSpec returned error: %v", err)
	}
	if filter.Section != "Administrative" {
		t.Errorf("section = %q, want Administrative", filter.Section)
	}
	if filter.Field != "QC Status" {
		t.Errorf("field = %q, want QC Status", filter.Field)
	}
	if filter.Keyword != "approved" {
		t.Errorf("keyword = %q, want approved", filter.Keyword)
	}
}

func TestParseFilterSpecEmptyKeyword(t *testing.T) {
	filter, err := parseFilterSpec("Descriptive:Genre=")
	if err != nil {
		t.Fatalf("parseFilterSpec returned error: %v", err)
	}
	if filter.Keyword != "" {
		t.Errorf("keyword = %q, want empty", filter.Keyword)
	}
}

func TestParseFilterSpecRejectsMalformed(t *testing.T) {
	for _, spec := range []string{"", "no separators", "Section=keyword", ":Field=keyword", "Section:=keyword"} {
		if _, err := parseFilterSpec(spec); err == nil {
			t.Errorf("parseFilterSpec(%q) succeeded, want error", spec)
		}
	}
}

func TestParseFilterSpecs(t *testing.T) {
	filters, err := parseFilterSpecs([]string{
		"Administrative:QC Status=approved",
		"Descriptive:Genre=documentary",
	})
	if err != nil {
		t.Fatalf("parseFilterSpecs returned error: %v", err)
	}
	if len(filters) != 2 {
		t.Fatalf("got %d filters, want 2", len(filters))
	}

	if _, err := parseFilterSpecs([]string{"Administrative:QC Status=approved", "bad"}); err == nil {
		t.Error("parseFilterSpecs with a malformed spec succeeded, want error")
	}
}

func TestParseAssignment(t *testing.T) {
	set, err := parseAssignment("Descriptive:Summary=A short reel.")
	if err != nil {
		t.Fatalf("parseAssignment returned error: %v", err)
	}
	if set.Section != "Descriptive" || set.Field != "Summary" || set.Value != "A short reel." {
		t.Fatalf("unexpected assignment: %+v", set)
	}

	for _, arg := range []string{"no separators", "Section=value", ":Field=value"} {
		if _, err := parseAssignment(arg); err == nil {
			t.Errorf("parseAssignment(%q) succeeded, want error", arg)
		}
	}
}

func TestInferMediaType(t *testing.T) {
	cases := map[string]string{
		"/media/interview.mp4":  "video",
		"/media/interview.MOV":  "video",
		"/media/session.wav":    "audio",
		"/media/scan.tiff":      "image",
		"/media/notes.txt":      "video",
		"/media/no_extension":   "video",
		"/media/archive.FLAC":   "audio",
		"/media/photograph.JPG": "image",
	}
	for path, want := range cases {
		if got := inferMediaType(path); got != want {
			t.Errorf("inferMediaType(%q) = %q, want %q", path, got, want)
		}
	}
}
