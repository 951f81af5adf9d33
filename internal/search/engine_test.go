package search_test

import (
	"path/filepath"
	"testing"

	"sidecar/internal/search"
	"sidecar/internal/sidecar"
	"sidecar/internal/testsupport"
)

func newLibrary(t *testing.T) (*sidecar.Store, string) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store, err := sidecar.Open(cfg, nil)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	video := testsupport.NewRecord(t, "video", "Cairo Street Scenes")
	video.Section("Descriptive").SetField("KeyWords", "street, market")
	if _, err := store.Save(video, ""); err != nil {
		t.Fatalf("save video record: %v", err)
	}

	audio := testsupport.NewRecord(t, "audio", "Beirut Radio Archive")
	audio.Section("Descriptive").SetField("Genre", "News report")
	if _, err := store.Save(audio, ""); err != nil {
		t.Fatalf("save audio record: %v", err)
	}

	return store, store.Root()
}

func titles(results []search.Result) []string {
	out := make([]string, 0, len(results))
	for _, res := range results {
		out = append(out, res.Record.Title)
	}
	return out
}

func TestSearchTextQueryMatchesTitle(t *testing.T) {
	_, folder := newLibrary(t)
	engine := search.NewEngine(nil)

	results, err := engine.Search(folder, nil, true, "cairo")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if got := titles(results); len(got) != 1 || got[0] != "Cairo Street Scenes" {
		t.Fatalf("unexpected results: %v", got)
	}
}

func TestSearchFilterIsCaseInsensitiveSubstring(t *testing.T) {
	_, folder := newLibrary(t)
	engine := search.NewEngine(nil)

	results, err := engine.Search(folder, []search.Filter{
		{Section: "Administrative", Field: "Title", Keyword: "BEIRUT"},
	}, true, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if got := titles(results); len(got) != 1 || got[0] != "Beirut Radio Archive" {
		t.Fatalf("unexpected results: %v", got)
	}
}

func TestSearchMatchAllSemantics(t *testing.T) {
	_, folder := newLibrary(t)
	engine := search.NewEngine(nil)

	both := []search.Filter{
		{Section: "Administrative", Field: "Title", Keyword: "beirut"},
		{Section: "Descriptive", Field: "Genre", Keyword: "news"},
	}
	results, err := engine.Search(folder, both, true, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one record satisfying both filters, got %d", len(results))
	}

	oneMiss := []search.Filter{
		{Section: "Administrative", Field: "Title", Keyword: "beirut"},
		{Section: "Descriptive", Field: "Genre", Keyword: "documentary"},
	}
	results, err = engine.Search(folder, oneMiss, true, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("match_all with a failing filter must exclude, got %d", len(results))
	}

	results, err = engine.Search(folder, oneMiss, false, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("match_any with one satisfied filter must include, got %d", len(results))
	}
}

func TestSearchFilterOnAbsentFieldRequiresEmptyKeyword(t *testing.T) {
	_, folder := newLibrary(t)
	engine := search.NewEngine(nil)

	absent := []search.Filter{{Section: "NoSection", Field: "NoField", Keyword: "x"}}
	results, err := engine.Search(folder, absent, true, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 0 {
		t.Fatal("absent key with non-empty keyword must not match")
	}

	emptyKeyword := []search.Filter{{Section: "NoSection", Field: "NoField", Keyword: ""}}
	results, err = engine.Search(folder, emptyKeyword, true, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("absent key with empty keyword must match all, got %d", len(results))
	}
}

func TestSearchFiltersExcludeBeforeTextQuery(t *testing.T) {
	_, folder := newLibrary(t)
	engine := search.NewEngine(nil)

	filters := []search.Filter{{Section: "Descriptive", Field: "Genre", Keyword: "news"}}
	results, err := engine.Search(folder, filters, true, "cairo")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 0 {
		t.Fatal("record failing the filter must be excluded regardless of text query")
	}
}

func TestSearchEmptyCriteriaListsAllInPathOrder(t *testing.T) {
	_, folder := newLibrary(t)
	engine := search.NewEngine(nil)

	results, err := engine.Search(folder, nil, true, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected every document, got %d", len(results))
	}
	// Lexicographic path order: audio_* sorts before video_*.
	if results[0].Record.MediaType != "audio" || results[1].Record.MediaType != "video" {
		t.Fatalf("results out of path order: %v", titles(results))
	}
}

func TestSearchTextQueryMatchesFilenameAndFieldValues(t *testing.T) {
	_, folder := newLibrary(t)
	engine := search.NewEngine(nil)

	// Filename stem match.
	results, err := engine.Search(folder, nil, true, "beirut_radio_archive")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("filename query matched %d records", len(results))
	}

	// Flattened field value match.
	results, err = engine.Search(folder, nil, true, "market")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 1 || results[0].Record.Title != "Cairo Street Scenes" {
		t.Fatalf("field value query results: %v", titles(results))
	}
}

func TestSearchSkipsMalformedDocuments(t *testing.T) {
	store, folder := newLibrary(t)
	testsupport.WriteFile(t, store.Root(), "aaa_broken.xml", "definitely not xml")

	engine := search.NewEngine(nil)
	results, err := engine.Search(folder, nil, true, "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("malformed document should be skipped, got %d results", len(results))
	}
}

func TestSearchMissingFolderReturnsEmpty(t *testing.T) {
	engine := search.NewEngine(nil)
	results, err := engine.Search(filepath.Join(t.TempDir(), "absent"), nil, true, "")
	if err != nil {
		t.Fatalf("missing folder must not error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d", len(results))
	}
}
