package schema_test

import (
	"testing"

	"sidecar/internal/schema"
)

func TestSectionsKnownTypes(t *testing.T) {
	for _, mediaType := range schema.MediaTypes() {
		sections := schema.Sections(mediaType)
		if len(sections) == 0 {
			t.Fatalf("no sections for %q", mediaType)
		}
		if sections[0].Name != "Administrative" {
			t.Fatalf("%q: expected Administrative first, got %q", mediaType, sections[0].Name)
		}
		for _, section := range sections {
			if section.Color == "" {
				t.Fatalf("%q: section %q missing color", mediaType, section.Name)
			}
			seen := map[string]bool{}
			for _, field := range section.Fields {
				if seen[field.Name] {
					t.Fatalf("%q: duplicate field %q in section %q", mediaType, field.Name, section.Name)
				}
				seen[field.Name] = true
			}
		}
	}
}

func TestSectionsUnknownTypeFallsBack(t *testing.T) {
	fallback := schema.Sections("film")
	video := schema.Sections("video")
	if len(fallback) != len(video) {
		t.Fatalf("fallback layout differs from video: %d vs %d sections", len(fallback), len(video))
	}
	for i := range video {
		if fallback[i].Name != video[i].Name {
			t.Fatalf("fallback section %d = %q, want %q", i, fallback[i].Name, video[i].Name)
		}
	}
}

func TestSectionsCaseInsensitive(t *testing.T) {
	upper := schema.Sections("Image")
	lower := schema.Sections("image")
	if len(upper) != len(lower) {
		t.Fatal("media type lookup should ignore case")
	}
}

func TestSectionsReturnsDeepCopies(t *testing.T) {
	first := schema.Sections("video")
	first[0].Fields[0].Name = "Mutated"
	first[0].Fields[3].Options[0] = "Mutated"

	second := schema.Sections("video")
	if second[0].Fields[0].Name == "Mutated" {
		t.Fatal("catalog field leaked through returned copy")
	}
	if second[0].Fields[3].Options[0] == "Mutated" {
		t.Fatal("catalog options leaked through returned copy")
	}
}

func TestAllFieldPairsDeduplicates(t *testing.T) {
	pairs := schema.AllFieldPairs()
	if len(pairs) == 0 {
		t.Fatal("expected field pairs")
	}
	seen := map[schema.FieldPair]bool{}
	for _, pair := range pairs {
		if seen[pair] {
			t.Fatalf("duplicate pair %v", pair)
		}
		seen[pair] = true
	}
	// Video and audio share a layout; their shared pairs must appear once.
	if !seen[schema.FieldPair{Section: "Descriptive", Field: "Title"}] {
		t.Fatal("expected Descriptive:Title pair")
	}
	// Image-only fields still show up after the shared ones.
	if !seen[schema.FieldPair{Section: "Descriptive", Field: "PeopleInPhoto"}] {
		t.Fatal("expected image-only Descriptive:PeopleInPhoto pair")
	}
}

func TestCreationDefaults(t *testing.T) {
	for _, section := range schema.Sections("video") {
		if section.Name != "Technical Master" {
			continue
		}
		for _, field := range section.Fields {
			if field.Name == "EmbeddedMetadataSchema" && field.Default != "PBCoreXML" {
				t.Fatalf("EmbeddedMetadataSchema default = %q", field.Default)
			}
		}
	}
}

func TestExtensions(t *testing.T) {
	if exts := schema.Extensions("video"); len(exts) == 0 {
		t.Fatal("expected video extensions")
	}
	if exts := schema.Extensions("scroll"); exts != nil {
		t.Fatalf("expected nil for unknown type, got %v", exts)
	}
}
