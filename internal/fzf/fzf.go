package fzf

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"
)

// ErrNoSelection is returned when the picker is dismissed.
var ErrNoSelection = errors.New("no grouped search term selected")

// GroupPicker fuzzy-selects a grouped search term, previewing the columns
// it searches.
type GroupPicker struct {
	Header string
	names  []string
	terms  map[string][]string
}

func NewGroupPicker(terms map[string][]string, header string) *GroupPicker {
	names := make([]string, 0, len(terms))
	for name := range terms {
		names = append(names, name)
	}
	sort.Strings(names)
	return &GroupPicker{Header: header, names: names, terms: terms}
}

func (p *GroupPicker) Run() (string, error) {
	return p.RunWithQuery("")
}

func (p *GroupPicker) RunWithQuery(query string) (string, error) {
	if len(p.names) == 0 {
		return "", fmt.Errorf("there are no grouped search terms")
	}

	idx, err := p.find(query)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrNoSelection
		}
		return "", fmt.Errorf("error selecting grouped search term: %w", err)
	}
	if idx == -1 {
		return "", ErrNoSelection
	}
	return p.names[idx], nil
}

func (p *GroupPicker) find(query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(p.renderMarkdownPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if p.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(p.Header))
	}

	labels := p.Labels()
	return fuzzyfinder.Find(p.names, func(i int) string {
		return labels[i]
	}, options...)
}

// Labels returns the picker rows, one per grouped term.
func (p *GroupPicker) Labels() []string {
	labels := make([]string, len(p.names))
	for i, name := range p.names {
		labels[i] = fmt.Sprintf("%s [%s] ", name, strings.Join(p.terms[name], ", "))
	}
	return labels
}

// Markdown describes the grouped term at index i.
func (p *GroupPicker) Markdown(i int) string {
	if i < 0 || i >= len(p.names) {
		return ""
	}
	name := p.names[i]

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "Searching `%s:value` searches:\n\n", name)
	for _, column := range p.terms[name] {
		fmt.Fprintf(&b, "* `%s`\n", column)
	}
	return b.String()
}

func (p *GroupPicker) renderMarkdownPreview(
	i, w, h int,
) string {
	if i == -1 {
		return ""
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(max(20, w-4)),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return p.Markdown(i)
	}

	markdown, err := r.Render(p.Markdown(i))
	if err != nil {
		return "Error rendering preview"
	}

	return markdown
}
