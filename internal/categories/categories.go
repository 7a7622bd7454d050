package categories

import (
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/Paintersrp/shelf/internal/fields"
	"github.com/Paintersrp/shelf/internal/library"
)

// UserPrefix starts the key of every user category.
const UserPrefix = "@"

// Fields is the field metadata the browser groups books by.
type Fields interface {
	AllFieldKeys() []string
	Metadata(key string) (fields.Metadata, bool)
	Expand(location string) []string
}

// Item is one value of a category and the number of books holding it.
type Item struct {
	Name  string
	Field string
	Count int
}

// Category is a node of the category browser.
type Category struct {
	Key  string
	Name string
	// User is set for user categories, Generated for the ones made from
	// grouped search terms.
	User      bool
	Generated bool
	Items     []Item
}

// Source is everything a category model is built from.
type Source struct {
	Books  []library.Book
	Fields Fields
	// UserCategories is the stored user_categories value: a map of category
	// name to a list of [item, field key, flag] triples.
	UserCategories any
	MakeFromGroups []string
	GroupedTerms   map[string][]string
}

// Build computes the category model: the field categories in field order,
// then the user categories sorted by name.
func Build(src Source) []Category {
	counts := countItems(src.Books)

	var out []Category
	for _, key := range src.Fields.AllFieldKeys() {
		m, ok := src.Fields.Metadata(key)
		if !ok || !m.IsCategory {
			continue
		}
		out = append(out, Category{Key: key, Name: m.Name, Items: fieldItems(counts, key)})
	}

	user := userCategories(src.UserCategories, counts)
	taken := make(map[string]bool, len(user))
	for _, c := range user {
		taken[strings.ToLower(c.Name)] = true
	}

	for _, name := range src.MakeFromGroups {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || taken[name] {
			continue
		}
		if _, ok := src.GroupedTerms[name]; !ok {
			continue
		}
		taken[name] = true

		var items []Item
		for _, key := range src.Fields.Expand(name) {
			items = append(items, fieldItems(counts, key)...)
		}
		sortItems(items)
		user = append(user, Category{Key: UserPrefix + name, Name: name, User: true, Generated: true, Items: items})
	}

	sort.SliceStable(user, func(i, j int) bool {
		return strings.ToLower(user[i].Name) < strings.ToLower(user[j].Name)
	})
	return append(out, user...)
}

// countItems maps field key to item to the number of books holding it.
func countItems(books []library.Book) map[string]map[string]int {
	counts := make(map[string]map[string]int)
	for _, book := range books {
		for key, values := range book.Fields {
			seen := make(map[string]bool, len(values))
			for _, value := range values {
				if value == "" || seen[value] {
					continue
				}
				seen[value] = true
				if counts[key] == nil {
					counts[key] = make(map[string]int)
				}
				counts[key][value]++
			}
		}
	}
	return counts
}

func fieldItems(counts map[string]map[string]int, key string) []Item {
	items := make([]Item, 0, len(counts[key]))
	for name, count := range counts[key] {
		items = append(items, Item{Name: name, Field: key, Count: count})
	}
	sortItems(items)
	return items
}

func userCategories(raw any, counts map[string]map[string]int) []Category {
	var out []Category
	for name, entries := range cast.ToStringMap(raw) {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c := Category{Key: UserPrefix + name, Name: name, User: true}
		for _, entry := range cast.ToSlice(entries) {
			triple := cast.ToStringSlice(entry)
			if len(triple) < 2 || triple[0] == "" {
				continue
			}
			c.Items = append(c.Items, Item{Name: triple[0], Field: triple[1], Count: counts[triple[1]][triple[0]]})
		}
		sortItems(c.Items)
		out = append(out, c)
	}
	return out
}

func sortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := strings.ToLower(items[i].Name), strings.ToLower(items[j].Name)
		if a != b {
			return a < b
		}
		return items[i].Field < items[j].Field
	})
}
