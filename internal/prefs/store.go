package prefs

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/Paintersrp/shelf/internal/constants"
	"github.com/Paintersrp/shelf/internal/fields"
)

// Store is a key/value preference store with defaults.
type Store interface {
	Get(key string, def any) any
	Set(key string, value any) error
	Contains(key string) bool
}

// HistoryStore is a Store that can enumerate its defaults, which is how
// search history keys are discovered.
type HistoryStore interface {
	Store
	Defaults() map[string]any
}

// Registry is the field metadata the search pane consults.
type Registry interface {
	SearchTerms() []string
	AllFieldKeys() []string
	Metadata(key string) (fields.Metadata, bool)
	AddGroupedSearchTerms(gst map[string][]string) error
	ValidateGroupedSearchTerms(gst map[string][]string) error
	Expand(location string) []string
	Suggest(location string) (string, bool)
}

// Host is the application surrounding the pane.
type Host interface {
	NotifyChanged()
	RebuildCategoryModel()
	ApplySearchAsYouType(enabled bool)
	ApplyHighlightMatches(enabled bool)
	RerunSearch()
	ClearSearchHistoryCache()
}

// ParseList splits comma-separated text, trimming entries and dropping
// blanks.
func ParseList(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GroupedTerms reads the grouped search terms held by store.
func GroupedTerms(store Store) map[string][]string {
	return termMap(store.Get(constants.GroupedSearchTerms, nil))
}

// MakeUserCategories reads the grouped term names that get a generated user
// category.
func MakeUserCategories(store Store) []string {
	return stringList(store.Get(constants.GroupedSearchMakeUserCategories, nil))
}

func stringList(v any) []string {
	var raw []string
	switch list := v.(type) {
	case nil:
		return nil
	case []string:
		raw = list
	default:
		raw = cast.ToStringSlice(v)
	}

	var out []string
	for _, item := range raw {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// termMap coerces a stored grouped-term value into its canonical shape:
// lower-case non-blank names mapped to non-empty lists.
func termMap(v any) map[string][]string {
	out := make(map[string][]string)

	raw := make(map[string]any)
	switch m := v.(type) {
	case nil:
		return out
	case map[string][]string:
		for k, list := range m {
			raw[k] = list
		}
	default:
		raw = cast.ToStringMap(v)
	}

	for name, values := range raw {
		name = strings.ToLower(strings.TrimSpace(name))
		list := stringList(values)
		if name == "" || len(list) == 0 {
			continue
		}
		out[name] = list
	}
	return out
}

func mapKeys(v any) []string {
	var keys []string
	for key := range cast.ToStringMap(v) {
		keys = append(keys, key)
	}
	return keys
}
