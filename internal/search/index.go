package search

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Paintersrp/shelf/internal/cache"
	"github.com/Paintersrp/shelf/internal/library"
)

const queryCacheSize = 64

// Locations resolves search locations to field keys.
type Locations interface {
	Expand(location string) []string
	SearchableKeys() []string
}

// Index stores the books a search runs over. Matches are memoised per
// query until the next Build or SetConfig.
type Index struct {
	locations Locations
	cfg       Config
	books     []library.Book
	matches   *cache.LRU[string, []Result]
}

// NewIndex constructs an empty index resolving locations through locations.
func NewIndex(locations Locations, cfg Config) *Index {
	return &Index{
		locations: locations,
		cfg:       cfg,
		matches:   cache.New[string, []Result](queryCacheSize),
	}
}

// Build replaces the index contents.
func (idx *Index) Build(books []library.Book) {
	idx.books = append([]library.Book(nil), books...)
	sort.SliceStable(idx.books, func(i, j int) bool {
		return idx.books[i].ID < idx.books[j].ID
	})
	idx.matches.Purge()
}

// SetConfig replaces the column limits. It also forgets memoised matches,
// so callers use it to rerun searches after the locations change.
func (idx *Index) SetConfig(cfg Config) {
	cfg.Columns = append([]string(nil), cfg.Columns...)
	idx.cfg = cfg
	idx.matches.Purge()
}

func (idx *Index) Config() Config {
	cfg := idx.cfg
	cfg.Columns = append([]string(nil), cfg.Columns...)
	return cfg
}

// Len reports the number of indexed books.
func (idx *Index) Len() int {
	return len(idx.books)
}

// ParseQuery splits raw into terms. Whitespace separates terms unless it is
// inside double quotes, and a term of the form location:value is kept as a
// located term when the index knows the location.
func (idx *Index) ParseQuery(raw string) Query {
	q := Query{Raw: raw}
	for _, token := range tokenize(raw) {
		term := Term{Value: token}
		if colon := strings.Index(token, ":"); colon > 0 {
			location := strings.ToLower(token[:colon])
			if idx.locations != nil && idx.locations.Expand(location) != nil {
				term = Term{Location: location, Value: token[colon+1:]}
			}
		}
		q.Terms = append(q.Terms, term)
	}
	return q
}

func tokenize(raw string) []string {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
	)
	flush := func() {
		if token := strings.TrimSpace(current.String()); token != "" {
			tokens = append(tokens, token)
		}
		current.Reset()
	}
	for _, r := range raw {
		switch {
		case r == '"':
			quoted = !quoted
		case unicode.IsSpace(r) && !quoted:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// Search returns the books matching q, in book order.
func (idx *Index) Search(q Query) []Result {
	return slices.Clone(idx.matched(q))
}

// Highlight returns every book, flagging the ones that match q.
func (idx *Index) Highlight(q Query) []Result {
	byID := make(map[int64]Result)
	for _, result := range idx.matched(q) {
		byID[result.BookID] = result
	}

	results := make([]Result, 0, len(idx.books))
	for _, book := range idx.books {
		result, ok := byID[book.ID]
		if !ok {
			result = Result{BookID: book.ID, Title: book.Title}
		}
		results = append(results, result)
	}
	return results
}

func (idx *Index) matched(q Query) []Result {
	key := queryKey(q)
	if results, ok := idx.matches.Get(key); ok {
		return results
	}

	results := make([]Result, 0)
	for _, book := range idx.books {
		if result, ok := idx.match(book, q); ok {
			results = append(results, result)
		}
	}
	idx.matches.Put(key, results)
	return results
}

func queryKey(q Query) string {
	var b strings.Builder
	for _, term := range q.Terms {
		b.WriteString(term.Location)
		b.WriteByte(0)
		b.WriteString(term.Value)
		b.WriteByte(1)
	}
	return b.String()
}

func (idx *Index) match(book library.Book, q Query) (Result, bool) {
	result := Result{BookID: book.ID, Title: book.Title, Matched: true}
	if len(q.Terms) == 0 {
		result.MatchFrom = "all"
		return result, true
	}

	for i, term := range q.Terms {
		keys := idx.freeTextKeys()
		if term.Location != "" {
			keys = idx.locations.Expand(term.Location)
		}
		key, snippet, ok := matchFields(book, keys, strings.ToLower(term.Value))
		if !ok {
			return Result{}, false
		}
		if i == 0 {
			result.MatchFrom = key
			result.Snippet = snippet
		}
	}
	return result, true
}

func (idx *Index) freeTextKeys() []string {
	if idx.locations == nil {
		return []string{"title"}
	}
	if !idx.cfg.LimitColumns || len(idx.cfg.Columns) == 0 {
		return idx.locations.SearchableKeys()
	}

	var keys []string
	seen := make(map[string]bool)
	for _, column := range idx.cfg.Columns {
		expanded := idx.locations.Expand(column)
		if expanded == nil {
			expanded = []string{column}
		}
		for _, key := range expanded {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	return keys
}

// matchFields reports the first field of keys holding a value that contains
// term. An empty term matches any field with a value.
func matchFields(book library.Book, keys []string, term string) (string, string, bool) {
	for _, key := range keys {
		for _, value := range book.Values(key) {
			if value == "" {
				continue
			}
			lowered := strings.ToLower(value)
			at := strings.Index(lowered, term)
			if at == -1 {
				continue
			}
			if key == "comments" {
				runeStart := utf8.RuneCountInString(lowered[:at])
				return key, bodySnippet(value, runeStart, utf8.RuneCountInString(term)), true
			}
			return key, fmt.Sprintf("%s: %s", key, value), true
		}
	}
	return "", "", false
}

func bodySnippet(body string, index, termLen int) string {
	if termLen <= 0 {
		termLen = 1
	}

	runes := []rune(body)
	start := index
	end := index + termLen
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}

	const window = 40
	snippetStart := max(0, start-window)
	snippetEnd := min(len(runes), end+window)

	snippet := string(runes[snippetStart:snippetEnd])
	snippet = strings.TrimSpace(snippet)
	if snippetStart > 0 {
		snippet = "…" + snippet
	}
	if snippetEnd < len(runes) {
		snippet = snippet + "…"
	}
	return snippet
}
