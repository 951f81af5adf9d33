package textutil_test

import (
	"testing"

	"sidecar/internal/textutil"
)

func TestSanitizeTitleToken(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Cairo Street Scenes", "cairo_street_scenes"},
		{"punctuation dropped", "War & Peace: Part 1!", "war_peace_part_1"},
		{"whitespace collapsed", "  Beirut   Radio\tArchive ", "beirut_radio_archive"},
		{"hyphens kept", "1988-training-film", "1988-training-film"},
		{"empty", "", "untitled"},
		{"only punctuation", "???!!!", "untitled"},
		{"leading separators trimmed", "--title--", "title"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := textutil.SanitizeTitleToken(tc.input); got != tc.want {
				t.Fatalf("SanitizeTitleToken(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeTypeToken(t *testing.T) {
	if got := textutil.SanitizeTypeToken("Video"); got != "video" {
		t.Fatalf("expected lowercase media type, got %q", got)
	}
	if got := textutil.SanitizeTypeToken(""); got != "media" {
		t.Fatalf("expected fallback token, got %q", got)
	}
}
