package search

import (
	"slices"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cast"

	"github.com/Paintersrp/shelf/internal/constants"
)

const defaultHistoryLimit = 50

// HistoryStore persists the search history.
type HistoryStore interface {
	Get(key string, def any) any
	Set(key string, value any) error
}

// Bar is the library search bar: the current query, its results, the
// display flags and the query history.
type Bar struct {
	index *Index
	store HistoryStore
	log   logr.Logger

	asYouType bool
	highlight bool

	query   string
	results []Result
	history []string
	limit   int
}

// NewBar loads the history from store and runs the empty query.
func NewBar(index *Index, store HistoryStore, log logr.Logger) *Bar {
	b := &Bar{index: index, store: store, log: log, limit: defaultHistoryLimit}
	if store != nil {
		b.history = cleanHistory(cast.ToStringSlice(store.Get(constants.MainSearchHistory, []string{})))
		if limit := cast.ToInt(store.Get("saved_search_history_limit", defaultHistoryLimit)); limit > 0 {
			b.limit = limit
		}
		if len(b.history) > b.limit {
			b.history = b.history[:b.limit]
		}
	}
	b.DoSearch()
	return b
}

func cleanHistory(history []string) []string {
	out := make([]string, 0, len(history))
	for _, entry := range history {
		if entry = strings.TrimSpace(entry); entry != "" && !slices.Contains(out, entry) {
			out = append(out, entry)
		}
	}
	return out
}

func (b *Bar) SetSearchAsYouType(enabled bool) {
	b.asYouType = enabled
}

func (b *Bar) SearchAsYouType() bool {
	return b.asYouType
}

// SetHighlightOnly switches between filtering the results and flagging
// matches among all books.
func (b *Bar) SetHighlightOnly(enabled bool) {
	b.highlight = enabled
}

func (b *Bar) HighlightOnly() bool {
	return b.highlight
}

// SetColumnLimit restricts free text to columns while enabled.
func (b *Bar) SetColumnLimit(enabled bool, columns []string) {
	b.index.SetConfig(Config{LimitColumns: enabled, Columns: columns})
}

// Index returns the index the bar searches.
func (b *Bar) Index() *Index {
	return b.index
}

func (b *Bar) Query() string {
	return b.query
}

// Search runs query and records it in the history.
func (b *Bar) Search(query string) error {
	b.query = strings.TrimSpace(query)
	b.DoSearch()
	if b.query == "" {
		return nil
	}
	return b.record(b.query)
}

// Preview runs query without recording it.
func (b *Bar) Preview(query string) {
	b.query = strings.TrimSpace(query)
	b.DoSearch()
}

// DoSearch re-runs the current query with the current flags.
func (b *Bar) DoSearch() {
	q := b.index.ParseQuery(b.query)
	if b.highlight {
		b.results = b.index.Highlight(q)
	} else {
		b.results = b.index.Search(q)
	}
	b.log.V(1).Info("search", "query", b.query, "results", len(b.results), "highlight", b.highlight)
}

func (b *Bar) Results() []Result {
	return append([]Result(nil), b.results...)
}

// History returns the recorded queries, most recent first.
func (b *Bar) History() []string {
	return append([]string(nil), b.history...)
}

// ClearHistory forgets the in-memory history. The persisted copy is
// cleared by the preferences pane.
func (b *Bar) ClearHistory() {
	b.history = nil
}

func (b *Bar) record(query string) error {
	history := []string{query}
	for _, entry := range b.history {
		if entry != query {
			history = append(history, entry)
		}
	}
	if len(history) > b.limit {
		history = history[:b.limit]
	}
	b.history = history

	if b.store == nil {
		return nil
	}
	return b.store.Set(constants.MainSearchHistory, append([]string(nil), history...))
}
