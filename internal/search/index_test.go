package search

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Paintersrp/shelf/internal/fields"
	"github.com/Paintersrp/shelf/internal/library"
)

func testBooks() []library.Book {
	return []library.Book{
		{ID: 2, UUID: "u2", Title: "Dune Messiah", Fields: map[string][]string{
			"authors": {"Frank Herbert"},
			"series":  {"Dune"},
			"tags":    {"Science Fiction"},
		}},
		{ID: 1, UUID: "u1", Title: "Adhoc Tales", Fields: map[string][]string{
			"authors":   {"Ann Author"},
			"#myseries": {"Adhoc"},
			"comments":  {strings.Repeat("filler ", 20) + "a rare adhoc mention " + strings.Repeat("padding ", 20)},
		}},
		{ID: 3, UUID: "u3", Title: "Cookbook", Fields: map[string][]string{
			"authors":    {"Chef"},
			"publisher":  {"Adhoc Press"},
			"#myseries2": {"Kitchen"},
		}},
	}
}

func newTestIndex(t testing.TB, cfg Config) *Index {
	t.Helper()
	registry := fields.NewRegistry([]library.Column{
		{Label: "myseries", Name: "My Series", Datatype: "series"},
		{Label: "myseries2", Name: "More Series", Datatype: "series"},
	})
	if err := registry.AddGroupedSearchTerms(map[string][]string{
		"allseries": {"series", "#myseries", "#myseries2"},
	}); err != nil {
		t.Fatalf("AddGroupedSearchTerms returned error: %v", err)
	}
	idx := NewIndex(registry, cfg)
	idx.Build(testBooks())
	return idx
}

func resultIDs(results []Result) []int64 {
	ids := make([]int64, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.BookID)
	}
	return ids
}

func TestParseQuery(t *testing.T) {
	idx := newTestIndex(t, Config{})

	q := idx.ParseQuery(`AllSeries:adhoc "science fiction" nosuch:thing tags:"science fiction"`)
	want := []Term{
		{Location: "allseries", Value: "adhoc"},
		{Value: "science fiction"},
		{Value: "nosuch:thing"},
		{Location: "tags", Value: "science fiction"},
	}
	if !reflect.DeepEqual(q.Terms, want) {
		t.Fatalf("expected terms %+v, got %+v", want, q.Terms)
	}
}

func TestIndexSearchEmptyQueryMatchesAll(t *testing.T) {
	idx := newTestIndex(t, Config{})

	got := resultIDs(idx.Search(idx.ParseQuery("  ")))
	if !reflect.DeepEqual(got, []int64{1, 2, 3}) {
		t.Fatalf("expected every book in id order, got %v", got)
	}
}

func TestIndexSearchGroupedTermExpandsToUnion(t *testing.T) {
	idx := newTestIndex(t, Config{})

	got := resultIDs(idx.Search(idx.ParseQuery("allseries:adhoc")))
	if !reflect.DeepEqual(got, []int64{1}) {
		t.Fatalf("expected only the #myseries match, got %v", got)
	}

	got = resultIDs(idx.Search(idx.ParseQuery("allseries:i")))
	if !reflect.DeepEqual(got, []int64{3}) {
		t.Fatalf("expected the #myseries2 match, got %v", got)
	}

	got = resultIDs(idx.Search(idx.ParseQuery("allseries:dune")))
	if !reflect.DeepEqual(got, []int64{2}) {
		t.Fatalf("expected the series match, got %v", got)
	}
}

func TestIndexSearchFreeTextAndAliases(t *testing.T) {
	idx := newTestIndex(t, Config{})

	got := resultIDs(idx.Search(idx.ParseQuery("adhoc")))
	if !reflect.DeepEqual(got, []int64{1, 3}) {
		t.Fatalf("expected free text to search every field, got %v", got)
	}

	got = resultIDs(idx.Search(idx.ParseQuery("author:herbert")))
	if !reflect.DeepEqual(got, []int64{2}) {
		t.Fatalf("expected alias to resolve to authors, got %v", got)
	}

	got = resultIDs(idx.Search(idx.ParseQuery("adhoc author:chef")))
	if !reflect.DeepEqual(got, []int64{3}) {
		t.Fatalf("expected every term to be required, got %v", got)
	}
}

func TestIndexSearchColumnLimit(t *testing.T) {
	idx := newTestIndex(t, Config{LimitColumns: true, Columns: []string{"title", "authors"}})

	got := resultIDs(idx.Search(idx.ParseQuery("adhoc")))
	if !reflect.DeepEqual(got, []int64{1}) {
		t.Fatalf("expected only the title match, got %v", got)
	}

	got = resultIDs(idx.Search(idx.ParseQuery("publisher:adhoc")))
	if !reflect.DeepEqual(got, []int64{3}) {
		t.Fatalf("expected located terms to ignore the limit, got %v", got)
	}

	idx.SetConfig(Config{LimitColumns: true, Columns: []string{"allseries"}})
	got = resultIDs(idx.Search(idx.ParseQuery("adhoc")))
	if !reflect.DeepEqual(got, []int64{1}) {
		t.Fatalf("expected grouped column limit to expand, got %v", got)
	}
}

func TestIndexHighlightKeepsEveryBook(t *testing.T) {
	idx := newTestIndex(t, Config{})

	results := idx.Highlight(idx.ParseQuery("tags:fiction"))
	if len(results) != 3 {
		t.Fatalf("expected all books, got %+v", results)
	}
	for _, r := range results {
		if r.Matched != (r.BookID == 2) {
			t.Fatalf("unexpected match flag for book %d: %+v", r.BookID, r)
		}
	}
}

func TestIndexSnippets(t *testing.T) {
	idx := newTestIndex(t, Config{LimitColumns: true, Columns: []string{"comments"}})

	results := idx.Search(idx.ParseQuery("rare"))
	if len(results) != 1 {
		t.Fatalf("expected one comments match, got %+v", results)
	}
	snippet := results[0].Snippet
	if results[0].MatchFrom != "comments" {
		t.Fatalf("expected match from comments, got %q", results[0].MatchFrom)
	}
	if !strings.HasPrefix(snippet, "…") || !strings.HasSuffix(snippet, "…") || !strings.Contains(snippet, "rare adhoc") {
		t.Fatalf("expected trimmed snippet around the term, got %q", snippet)
	}

	results = idx.Search(idx.ParseQuery("publisher:press"))
	if len(results) != 1 || results[0].Snippet != "publisher: Adhoc Press" {
		t.Fatalf("expected field snippet, got %+v", results)
	}
}

func TestIndexSetConfigForgetsMemoisedMatches(t *testing.T) {
	idx := newTestIndex(t, Config{})
	registry := idx.locations.(*fields.Registry)

	q := idx.ParseQuery("allseries:adhoc")
	if got := resultIDs(idx.Search(q)); !reflect.DeepEqual(got, []int64{1}) {
		t.Fatalf("expected only the #myseries match, got %v", got)
	}

	if err := registry.AddGroupedSearchTerms(map[string][]string{
		"allseries": {"series", "#myseries", "publisher"},
	}); err != nil {
		t.Fatalf("AddGroupedSearchTerms returned error: %v", err)
	}
	if got := resultIDs(idx.Search(q)); !reflect.DeepEqual(got, []int64{1}) {
		t.Fatalf("expected memoised matches before SetConfig, got %v", got)
	}

	idx.SetConfig(idx.Config())
	if got := resultIDs(idx.Search(q)); !reflect.DeepEqual(got, []int64{1, 3}) {
		t.Fatalf("expected the publisher match after SetConfig, got %v", got)
	}
}
