package search

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/shelf/internal/search"
)

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Background(lipgloss.Color("#224")).
			Bold(true).
			Padding(0, 1)
	matchedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#224"))
	plainStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCC"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	snippetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0AF")).PaddingLeft(2)
	statusStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"})
)

type keyMap struct {
	submit key.Binding
	copy   key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		copy:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy query")),
		quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// Model is an interactive search bar over the library.
type Model struct {
	bar    *search.Bar
	input  textinput.Model
	keys   keyMap
	height int
	status string

	copyFn func(string) error
}

func New(bar *search.Bar) Model {
	input := textinput.New()
	input.Placeholder = "tags:fiction myseries:adhoc"
	input.Prompt = "search: "
	input.SetValue(bar.Query())
	input.Focus()

	return Model{
		bar:    bar,
		input:  input,
		keys:   newKeyMap(),
		height: 20,
		copyFn: clipboard.WriteAll,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(5, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.submit):
			if err := m.bar.Search(m.input.Value()); err != nil {
				m.status = "Error saving history: " + err.Error()
			} else {
				m.status = fmt.Sprintf("%d results", m.matchCount())
			}
			return m, nil

		case key.Matches(msg, m.keys.copy):
			if err := m.copyFn(m.input.Value()); err != nil {
				m.status = "Copy failed: " + err.Error()
			} else {
				m.status = "Query copied"
			}
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.bar.SearchAsYouType() && m.input.Value() != before {
		m.bar.Preview(m.input.Value())
	}
	return m, cmd
}

func (m Model) matchCount() int {
	n := 0
	for _, r := range m.bar.Results() {
		if r.Matched {
			n++
		}
	}
	return n
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Library Search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	results := m.bar.Results()
	if len(results) == 0 {
		b.WriteString(dimStyle.Render("No books match."))
	}
	for i, r := range results {
		if i >= m.height {
			b.WriteString(dimStyle.Render(fmt.Sprintf("… %d more", len(results)-i)))
			break
		}
		b.WriteString(renderResult(r, m.bar.HighlightOnly()))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}
	return appStyle.Render(b.String())
}

func renderResult(r search.Result, highlight bool) string {
	line := fmt.Sprintf("%4d  %s", r.BookID, r.Title)
	switch {
	case highlight && r.Matched:
		line = matchedStyle.Render(line)
	case highlight:
		line = dimStyle.Render(line)
	default:
		line = plainStyle.Render(line)
	}
	if r.Matched && r.Snippet != "" {
		line += "\n" + snippetStyle.Render(r.Snippet)
	}
	return line
}

// Run starts the interactive search bar.
func Run(bar *search.Bar) error {
	if _, err := tea.NewProgram(New(bar), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running search: %w", err)
	}
	return nil
}
