package settings

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erikgeiser/promptkit/confirmation"

	"github.com/Paintersrp/shelf/internal/constants"
	"github.com/Paintersrp/shelf/internal/prefs"
)

const (
	groupsItem = "grouped_search_terms"
	clearItem  = "clear_search_histories"
)

var settingTitles = map[string]string{
	constants.SearchAsYouType:                 "Search as you type",
	constants.HighlightSearchMatches:          "Highlight matches instead of filtering",
	constants.LimitSearchColumns:              "Limit free text to some columns",
	constants.LimitSearchColumnsTo:            "Columns searched by free text",
	constants.GroupedSearchMakeUserCategories: "Make user categories from",
	groupsItem:                                "Grouped search terms",
	clearItem:                                 "Clear search histories",
}

type ListItem struct {
	name        string
	title       string
	description string
}

func (i ListItem) Title() string       { return i.title }
func (i ListItem) Description() string { return i.description }
func (i ListItem) FilterValue() string { return i.title }

type listKeyMap struct {
	toggleTitleBar   key.Binding
	toggleStatusBar  key.Binding
	togglePagination key.Binding
	toggleHelpMenu   key.Binding
	toggleEditItem   key.Binding
	quit             key.Binding
	forceQuit        key.Binding
	exitInputMode    key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		toggleTitleBar: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "toggle title"),
		),
		toggleStatusBar: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "toggle status"),
		),
		togglePagination: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "toggle pagination"),
		),
		toggleHelpMenu: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "toggle help"),
		),
		toggleEditItem: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit item"),
		),
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("Q"),
			key.WithHelp("Q", "discard and quit"),
		),
		exitInputMode: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit input mode"),
		),
	}
}

// ListModel is the search preferences pane.
type ListModel struct {
	list         list.Model
	keys         *listKeyMap
	delegateKeys *delegateKeyMap
	pane         *prefs.SearchPane

	input       textinput.Model
	inputName   string
	inputActive bool

	groups       GroupModel
	groupsActive bool

	confirm       *confirmation.Model
	confirmActive bool

	explain      bool
	glamourStyle string
	width        int

	status   string
	quitting bool
}

func NewListModel(pane *prefs.SearchPane, glamourStyle string) ListModel {
	delegateKeys := newDelegateKeyMap()
	listKeys := newListKeyMap()

	delegate := newItemDelegate(delegateKeys)
	settingsList := list.New(nil, delegate, 0, 0)
	settingsList.Title = "Search Preferences"
	settingsList.Styles.Title = titleStyle
	settingsList.KeyMap.Quit.SetEnabled(false)
	settingsList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			listKeys.toggleTitleBar,
			listKeys.toggleStatusBar,
			listKeys.togglePagination,
			listKeys.toggleHelpMenu,
			listKeys.quit,
			listKeys.forceQuit,
		}
	}

	input := textinput.New()
	input.Cursor.Style = cursorStyle
	input.PromptStyle = focusedStyle

	m := ListModel{
		list:         settingsList,
		keys:         listKeys,
		delegateKeys: delegateKeys,
		pane:         pane,
		input:        input,
		groups:       NewGroupModel(pane.Editor()),
		glamourStyle: glamourStyle,
	}
	m.refreshItems()
	return m
}

func (m *ListModel) refreshItems() {
	settings := m.pane.Settings()

	var items []list.Item
	for _, name := range settings.Names() {
		description := settings.Text(name)
		if kind, _ := settings.Kind(name); kind == prefs.KindBool {
			description = onOff(settings.Bool(name))
		}
		if description == "" {
			description = "(none)"
		}
		items = append(items, ListItem{name: name, title: settingTitles[name], description: description})
	}

	terms := len(m.pane.Editor().Terms())
	items = append(items,
		ListItem{name: groupsItem, title: settingTitles[groupsItem], description: fmt.Sprintf("%d defined", terms)},
		ListItem{name: clearItem, title: settingTitles[clearItem], description: "forget every saved search"},
	)

	index := m.list.Index()
	m.list.SetItems(items)
	m.list.Select(index)
}

func (m *ListModel) setStatus(msg string) tea.Cmd {
	m.status = msg
	return m.list.NewStatusMessage(statusMessageStyle(msg))
}

func (m ListModel) withStatus(msg string) (tea.Model, tea.Cmd) {
	cmd := m.setStatus(msg)
	return m, cmd
}

func (m ListModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.width = msg.Width - h
		m.groups, _ = m.groups.Update(msg)

	case tea.KeyMsg:
		// Don't match any of the keys below if we're actively filtering.
		if m.list.FilterState() == list.Filtering {
			break
		}

		if m.groupsActive {
			var cmd tea.Cmd
			m.groups, cmd = m.groups.Update(msg)
			if m.groups.Done() {
				m.groupsActive = false
				m.groups.done = false
				m.refreshItems()
				if m.pane.Dirty() {
					return m.withStatus("Grouped search terms changed, press a to apply")
				}
			}
			return m, cmd
		}

		if m.confirmActive {
			return m.updateConfirm(msg)
		}

		if m.inputActive {
			return m.updateInput(msg)
		}

		if m.explain {
			if key.Matches(msg, m.keys.exitInputMode) || key.Matches(msg, m.delegateKeys.explain) {
				m.explain = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.toggleEditItem):
			return m.choose()

		case key.Matches(msg, m.delegateKeys.apply):
			cmd := m.apply()
			return m, cmd

		case key.Matches(msg, m.delegateKeys.clear):
			return m.openConfirm()

		case key.Matches(msg, m.delegateKeys.explain):
			m.explain = true
			return m, nil

		case key.Matches(msg, m.keys.quit):
			if m.pane.Dirty() {
				return m.withStatus("Unapplied changes: press a to apply or Q to discard")
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.forceQuit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.toggleTitleBar):
			v := !m.list.ShowTitle()
			m.list.SetShowTitle(v)
			m.list.SetShowFilter(v)
			m.list.SetFilteringEnabled(v)
			return m, nil

		case key.Matches(msg, m.keys.toggleStatusBar):
			m.list.SetShowStatusBar(!m.list.ShowStatusBar())
			return m, nil

		case key.Matches(msg, m.keys.togglePagination):
			m.list.SetShowPagination(!m.list.ShowPagination())
			return m, nil

		case key.Matches(msg, m.keys.toggleHelpMenu):
			m.list.SetShowHelp(!m.list.ShowHelp())
			return m, nil
		}
	}

	// This will also call our delegate's update function.
	newListModel, cmd := m.list.Update(msg)
	m.list = newListModel
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m ListModel) choose() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return m, nil
	}

	switch item.name {
	case groupsItem:
		m.groupsActive = true
		return m, m.groups.Init()
	case clearItem:
		return m.openConfirm()
	}

	settings := m.pane.Settings()
	kind, ok := settings.Kind(item.name)
	if !ok {
		return m, nil
	}
	if kind == prefs.KindBool {
		if err := settings.SetBool(item.name, !settings.Bool(item.name)); err != nil {
			return m.withStatus("Error: " + err.Error())
		}
		m.refreshItems()
		return m.withStatus("Changed: " + item.title)
	}

	m.inputName = item.name
	m.inputActive = true
	m.input.SetValue(settings.Text(item.name))
	m.input.Focus()
	return m, textinput.Blink
}

func (m ListModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitInputMode) {
		m.input.Blur()
		m.inputActive = false
		return m, nil
	}

	if !key.Matches(msg, m.keys.toggleEditItem) {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	var err error
	if m.inputName == constants.GroupedSearchMakeUserCategories {
		err = m.pane.SetMakeUserCategories(m.input.Value())
	} else {
		err = m.pane.Settings().SetText(m.inputName, m.input.Value())
	}

	m.input.Reset()
	m.input.Blur()
	m.inputActive = false
	if err != nil {
		return m.withStatus("Error: " + err.Error())
	}
	m.refreshItems()
	return m.withStatus("Changed: " + settingTitles[m.inputName])
}

func (m ListModel) openConfirm() (tea.Model, tea.Cmd) {
	conf := confirmation.New("Clear all search histories?", confirmation.No)
	m.confirm = confirmation.NewModel(conf)
	m.confirmActive = true
	return m, m.confirm.Init()
}

func (m ListModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitInputMode) {
		m.confirmActive = false
		return m, nil
	}

	// The prompt quits the program once answered; only its state is kept.
	_, cmd := m.confirm.Update(msg)
	switch msg.String() {
	case "enter", "y", "Y", "n", "N":
	default:
		return m, cmd
	}

	ok, err := m.confirm.Value()
	if err != nil {
		return m, nil
	}
	m.confirmActive = false
	if !ok {
		return m.withStatus("Search histories kept")
	}
	if err := m.pane.ClearHistories(); err != nil {
		return m.withStatus("Error: " + err.Error())
	}
	return m.withStatus("Search histories cleared")
}

// apply validates, commits and refreshes the host.
func (m *ListModel) apply() tea.Cmd {
	if err := m.pane.ValidateAndStage(); err != nil {
		if errors.Is(err, prefs.ErrPendingEdit) {
			return m.setStatus("Save or discard the grouped search term being edited first")
		}
		return m.setStatus("Error: " + err.Error())
	}
	if !m.pane.Dirty() {
		return m.setStatus("Nothing to apply")
	}
	if err := m.pane.Commit(); err != nil {
		return m.setStatus("Error: " + err.Error())
	}
	m.pane.RefreshHost()
	m.refreshItems()
	return m.setStatus("Applied and saved")
}

func (m ListModel) View() string {
	if m.quitting {
		return ""
	}
	if m.groupsActive {
		return appStyle.Render(m.groups.View())
	}
	if m.confirmActive {
		return appStyle.Render(m.confirm.View())
	}
	if m.inputActive {
		title := titleStyle.Render(settingTitles[m.inputName])
		return appStyle.Render(title + "\n\n" + inputStyle.Render(m.input.View()))
	}
	if m.explain {
		return appStyle.Render(renderExplanation(m.glamourStyle, m.width))
	}
	return appStyle.Render(m.list.View())
}

func Run(pane *prefs.SearchPane) error {
	if _, err := tea.NewProgram(NewListModel(pane, GlamourStyle()), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running settings: %w", err)
	}

	return nil
}
