package fields

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/Paintersrp/shelf/internal/library"
)

// Metadata describes one library column.
type Metadata struct {
	Key         string
	Name        string
	Datatype    string
	SearchTerms []string
	IsCategory  bool
	IsCustom    bool
}

// SearchEnabled reports whether the column can be named in a search.
func (m Metadata) SearchEnabled() bool {
	return len(m.SearchTerms) > 0
}

var builtins = []Metadata{
	{Key: "title", Name: "Title", Datatype: "text", SearchTerms: []string{"title"}},
	{Key: "authors", Name: "Authors", Datatype: "text", SearchTerms: []string{"authors", "author"}, IsCategory: true},
	{Key: "tags", Name: "Tags", Datatype: "text", SearchTerms: []string{"tags", "tag"}, IsCategory: true},
	{Key: "series", Name: "Series", Datatype: "series", SearchTerms: []string{"series"}, IsCategory: true},
	{Key: "publisher", Name: "Publisher", Datatype: "text", SearchTerms: []string{"publisher"}, IsCategory: true},
	{Key: "rating", Name: "Rating", Datatype: "rating", SearchTerms: []string{"rating"}, IsCategory: true},
	{Key: "languages", Name: "Languages", Datatype: "text", SearchTerms: []string{"languages", "language"}, IsCategory: true},
	{Key: "formats", Name: "Formats", Datatype: "text", SearchTerms: []string{"formats", "format"}, IsCategory: true},
	{Key: "identifiers", Name: "Identifiers", Datatype: "text", SearchTerms: []string{"identifiers", "identifier", "isbn"}, IsCategory: true},
	{Key: "comments", Name: "Comments", Datatype: "comments", SearchTerms: []string{"comments", "comment"}},
	{Key: "pubdate", Name: "Published", Datatype: "datetime", SearchTerms: []string{"pubdate"}},
	{Key: "uuid", Name: "UUID", Datatype: "text", SearchTerms: []string{"uuid"}},
	{Key: "news", Name: "News", Datatype: "text", IsCategory: true},
}

var categoryDatatypes = map[string]bool{
	"text":        true,
	"enumeration": true,
	"series":      true,
	"rating":      true,
}

// Registry knows every column of a library, the search terms that name
// them, and the grouped search terms currently in effect.
type Registry struct {
	fields map[string]Metadata
	order  []string
	// terms maps lower-case search terms to the field key they name.
	terms map[string]string
	// grouped maps grouped term names to the field keys they expand to.
	grouped    map[string][]string
	groupedRaw map[string][]string
}

// NewRegistry builds a registry from the built-in columns plus columns.
func NewRegistry(columns []library.Column) *Registry {
	r := &Registry{
		fields:     make(map[string]Metadata),
		terms:      make(map[string]string),
		grouped:    make(map[string][]string),
		groupedRaw: make(map[string][]string),
	}

	for _, m := range builtins {
		r.add(m)
	}
	for _, col := range columns {
		r.add(Metadata{
			Key:         col.Key(),
			Name:        col.Name,
			Datatype:    col.Datatype,
			SearchTerms: []string{col.Key()},
			IsCategory:  categoryDatatypes[col.Datatype],
			IsCustom:    true,
		})
	}

	return r
}

func (r *Registry) add(m Metadata) {
	m.SearchTerms = append([]string(nil), m.SearchTerms...)
	r.fields[m.Key] = m
	r.order = append(r.order, m.Key)
	for _, term := range m.SearchTerms {
		r.terms[strings.ToLower(term)] = m.Key
	}
}

// AllFieldKeys returns every field key in registration order.
func (r *Registry) AllFieldKeys() []string {
	return append([]string(nil), r.order...)
}

func (r *Registry) Metadata(key string) (Metadata, bool) {
	m, ok := r.fields[key]
	return m, ok
}

// SearchTerms returns every name usable as a search location, including
// the grouped terms, sorted.
func (r *Registry) SearchTerms() []string {
	out := make([]string, 0, len(r.terms)+len(r.grouped))
	for term := range r.terms {
		out = append(out, term)
	}
	for name := range r.grouped {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// GroupedTerms returns a copy of the grouped terms as they were registered.
func (r *Registry) GroupedTerms() map[string][]string {
	out := make(map[string][]string, len(r.groupedRaw))
	for name, values := range r.groupedRaw {
		out[name] = append([]string(nil), values...)
	}
	return out
}

// AddGroupedSearchTerms replaces the registered grouped terms with gst.
// Either every term is accepted or none is; the first rejected term is
// reported as a *RegistryError.
func (r *Registry) AddGroupedSearchTerms(gst map[string][]string) error {
	grouped := make(map[string][]string, len(gst))
	raw := make(map[string][]string, len(gst))
	for _, name := range sortedNames(gst) {
		term, keys, err := r.resolveGroup(name, gst[name])
		if err != nil {
			return err
		}
		grouped[term] = keys
		raw[term] = append([]string(nil), gst[name]...)
	}

	r.grouped = grouped
	r.groupedRaw = raw
	return nil
}

// ValidateGroupedSearchTerms reports the first term of gst that
// AddGroupedSearchTerms would reject, without registering anything.
func (r *Registry) ValidateGroupedSearchTerms(gst map[string][]string) error {
	for _, name := range sortedNames(gst) {
		if _, _, err := r.resolveGroup(name, gst[name]); err != nil {
			return err
		}
	}
	return nil
}

// AddValidGroupedSearchTerms replaces the registered grouped terms with the
// terms of gst the registry accepts and returns a *RegistryError for each
// term it skipped.
func (r *Registry) AddValidGroupedSearchTerms(gst map[string][]string) []error {
	var rejected []error
	grouped := make(map[string][]string, len(gst))
	raw := make(map[string][]string, len(gst))
	for _, name := range sortedNames(gst) {
		term, keys, err := r.resolveGroup(name, gst[name])
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		grouped[term] = keys
		raw[term] = append([]string(nil), gst[name]...)
	}

	r.grouped = grouped
	r.groupedRaw = raw
	return rejected
}

// resolveGroup maps one grouped term to the deduplicated field keys its
// locations name.
func (r *Registry) resolveGroup(name string, locations []string) (string, []string, error) {
	term := strings.ToLower(strings.TrimSpace(name))
	if term == "" {
		return "", nil, &RegistryError{Term: name, Reason: "name is blank"}
	}
	if key, ok := r.terms[term]; ok {
		return "", nil, &RegistryError{Term: term, Reason: fmt.Sprintf("name is already the search term for column %q", key)}
	}

	var keys []string
	seen := make(map[string]bool)
	for _, location := range locations {
		loc := strings.ToLower(strings.TrimSpace(location))
		if loc == "" {
			continue
		}
		key, ok := r.terms[loc]
		if !ok {
			return "", nil, &RegistryError{Term: term, Location: location, Reason: "unknown column"}
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return "", nil, &RegistryError{Term: term, Reason: "no columns listed"}
	}
	return term, keys, nil
}

func sortedNames(gst map[string][]string) []string {
	names := make([]string, 0, len(gst))
	for name := range gst {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Expand returns the field keys a search location refers to, or nil when
// location is not a known search term or grouped term.
func (r *Registry) Expand(location string) []string {
	loc := strings.ToLower(strings.TrimSpace(location))
	if keys, ok := r.grouped[loc]; ok {
		return append([]string(nil), keys...)
	}
	if key, ok := r.terms[loc]; ok {
		return []string{key}
	}
	return nil
}

// SearchableKeys returns the keys of every search-enabled column.
func (r *Registry) SearchableKeys() []string {
	var keys []string
	for _, key := range r.order {
		if r.fields[key].SearchEnabled() {
			keys = append(keys, key)
		}
	}
	return keys
}

// Suggest returns the known search term closest to an unknown location.
// Nothing is suggested for known locations or when the closest term is
// more than two edits away.
func (r *Registry) Suggest(location string) (string, bool) {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" || r.Expand(loc) != nil {
		return "", false
	}

	best, bestDist := "", 3
	for _, term := range r.SearchTerms() {
		if _, grouped := r.grouped[term]; grouped {
			continue
		}
		if d := levenshtein.ComputeDistance(loc, term); d < bestDist || (d == bestDist && term < best) {
			best, bestDist = term, d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
