package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erikgeiser/promptkit/selection"

	"github.com/Paintersrp/shelf/internal/prefs"
)

const newTermLabel = "(new)"

type groupFocus int

const (
	focusSelector groupFocus = iota
	focusName
	focusValue
)

// GroupItem is a row of the grouped term selector.
type GroupItem struct {
	name   string
	values string
}

func (i GroupItem) Title() string {
	if i.name == "" {
		return newTermLabel
	}
	return i.name
}
func (i GroupItem) Description() string { return i.values }
func (i GroupItem) FilterValue() string { return i.name }

type groupKeyMap struct {
	save      key.Binding
	remove    key.Binding
	addColumn key.Binding
	next      key.Binding
	back      key.Binding
	submit    key.Binding
}

func newGroupKeyMap() *groupKeyMap {
	return &groupKeyMap{
		save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save term"),
		),
		remove: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete term"),
		),
		addColumn: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "add column"),
		),
		next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		submit: key.NewBinding(
			key.WithKeys("enter"),
		),
	}
}

// GroupModel edits grouped search terms: a selector of the existing terms
// plus name and value inputs.
type GroupModel struct {
	editor   *prefs.GroupedTermEditor
	keys     *groupKeyMap
	selector list.Model
	name     textinput.Model
	value    textinput.Model
	focus    groupFocus

	columnSelect       *selection.Model[string]
	columnSelectActive bool

	err  string
	done bool
}

func newTextInput(placeholder string) textinput.Model {
	t := textinput.New()
	t.Placeholder = placeholder
	t.Cursor.Style = cursorStyle
	t.PromptStyle = blurredStyle
	t.TextStyle = focusedStyle
	t.CharLimit = 256
	return t
}

func NewGroupModel(editor *prefs.GroupedTermEditor) GroupModel {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedItemStyle
	delegate.Styles.SelectedDesc = selectedItemStyle

	selector := list.New(nil, delegate, 40, 12)
	selector.Title = "Grouped Search Terms"
	selector.Styles.Title = titleStyle
	selector.SetFilteringEnabled(false)
	selector.SetShowHelp(false)
	selector.SetShowStatusBar(false)
	selector.KeyMap.Quit.SetEnabled(false)

	m := GroupModel{
		editor:   editor,
		keys:     newGroupKeyMap(),
		selector: selector,
		name:     newTextInput("term name"),
		value:    newTextInput("series, #myseries, #myseries2"),
	}
	m.sync()
	return m
}

// sync copies the editor state into the widgets.
func (m *GroupModel) sync() {
	terms := m.editor.Terms()
	names := m.editor.Names()
	items := make([]list.Item, len(names))
	for i, name := range names {
		items[i] = GroupItem{name: name, values: strings.Join(terms[name], ", ")}
	}
	m.selector.SetItems(items)
	m.selector.Select(m.editor.Current())
	m.name.SetValue(m.editor.NameText())
	m.value.SetValue(m.editor.ValueText())
}

func (m *GroupModel) setFocus(f groupFocus) {
	m.focus = f
	m.name.Blur()
	m.value.Blur()
	m.name.PromptStyle = blurredStyle
	m.value.PromptStyle = blurredStyle
	switch f {
	case focusName:
		m.name.Focus()
		m.name.PromptStyle = focusedStyle
	case focusValue:
		m.value.Focus()
		m.value.PromptStyle = focusedStyle
	}
}

// Done reports whether the user left the editor.
func (m GroupModel) Done() bool {
	return m.done
}

func (m GroupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m GroupModel) Update(msg tea.Msg) (GroupModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if size, ok := msg.(tea.WindowSizeMsg); ok {
			m.selector.SetSize(size.Width/2, size.Height-10)
		}
		return m, nil
	}

	if m.columnSelectActive {
		return m.updateColumnSelect(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.back):
		m.done = true
		m.err = ""
		return m, nil

	case key.Matches(keyMsg, m.keys.next):
		m.setFocus((m.focus + 1) % 3)
		return m, nil

	case key.Matches(keyMsg, m.keys.save):
		if err := m.editor.Save(); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		m.sync()
		return m, nil

	case key.Matches(keyMsg, m.keys.remove):
		if err := m.editor.Delete(); err != nil {
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		m.sync()
		return m, nil

	case key.Matches(keyMsg, m.keys.addColumn):
		candidates := m.editor.Candidates()
		if len(candidates) == 0 {
			m.err = "no columns can be added"
			return m, nil
		}
		sel := selection.New("Add a column to the grouped term.", candidates)
		m.columnSelect = selection.NewModel(sel)
		m.columnSelectActive = true
		return m, m.columnSelect.Init()
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSelector:
		before := m.selector.Index()
		m.selector, cmd = m.selector.Update(keyMsg)
		if after := m.selector.Index(); after != before || key.Matches(keyMsg, m.keys.submit) {
			if err := m.editor.Select(after); err != nil {
				m.err = err.Error()
				return m, cmd
			}
			m.err = ""
			m.name.SetValue(m.editor.NameText())
			m.value.SetValue(m.editor.ValueText())
		}
	case focusName:
		before := m.name.Value()
		m.name, cmd = m.name.Update(keyMsg)
		if m.name.Value() != before {
			m.editor.SetNameText(m.name.Value())
		}
	case focusValue:
		before := m.value.Value()
		m.value, cmd = m.value.Update(keyMsg)
		if m.value.Value() != before {
			m.editor.SetValueText(m.value.Value())
		}
	}
	return m, cmd
}

func (m GroupModel) updateColumnSelect(msg tea.KeyMsg) (GroupModel, tea.Cmd) {
	if key.Matches(msg, m.keys.back) {
		m.columnSelectActive = false
		return m, nil
	}

	_, cmd := m.columnSelect.Update(msg)
	if !key.Matches(msg, m.keys.submit) {
		return m, cmd
	}

	column, err := m.columnSelect.Value()
	if err != nil {
		return m, nil
	}
	m.columnSelectActive = false
	m.appendColumn(column)
	return m, nil
}

func (m *GroupModel) appendColumn(column string) {
	current := strings.TrimSpace(m.value.Value())
	if current == "" {
		m.value.SetValue(column)
	} else {
		m.value.SetValue(strings.TrimSuffix(current, ",") + ", " + column)
	}
	m.editor.SetValueText(m.value.Value())
}

func (m GroupModel) hints() string {
	var lines []string
	for _, hint := range m.editor.UnknownFields() {
		line := fmt.Sprintf("%s: %s", hint.Value, hint.Reason)
		if hint.Suggestion != "" {
			line += fmt.Sprintf(" (did you mean %s?)", hint.Suggestion)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m GroupModel) View() string {
	if m.columnSelectActive {
		return m.columnSelect.View()
	}

	var b strings.Builder
	b.WriteString(m.selector.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Name") + m.name.View() + "\n")
	b.WriteString(labelStyle.Render("Value") + m.value.View() + "\n")

	if hints := m.hints(); hints != "" {
		b.WriteString("\n" + hintStyle.Render(hints) + "\n")
	}
	if m.err != "" {
		b.WriteString("\n" + errorStyle.Render(m.err) + "\n")
	}

	state := fmt.Sprintf("save: %s  delete: %s", onOff(m.editor.SaveEnabled()), onOff(m.editor.DeleteEnabled()))
	b.WriteString("\n" + hintStyle.Render(state+"  ·  tab next field · ctrl+s save · ctrl+d delete · ctrl+a add column · esc back"))
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
