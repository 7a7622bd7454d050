package settings

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"github.com/Paintersrp/shelf/internal/constants"
	"github.com/Paintersrp/shelf/internal/state"
)

func newTestModel(t *testing.T) (ListModel, *state.State) {
	t.Helper()

	st, err := state.Open(t.TempDir(), "", logr.Discard())
	if err != nil {
		t.Fatalf("state.Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	pane, err := st.NewSearchPane()
	if err != nil {
		t.Fatalf("NewSearchPane returned error: %v", err)
	}
	return NewListModel(pane, "notty"), st
}

func send(t *testing.T, m ListModel, msgs ...tea.Msg) (ListModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		next, ok := updated.(ListModel)
		if !ok {
			t.Fatalf("unexpected model type %T", updated)
		}
		m = next
	}
	return m, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func selectItem(t *testing.T, m *ListModel, name string) {
	t.Helper()
	for i, item := range m.list.Items() {
		if li, ok := item.(ListItem); ok && li.name == name {
			m.list.Select(i)
			return
		}
	}
	t.Fatalf("item %s not found", name)
}

func TestListShowsEverySetting(t *testing.T) {
	m, _ := newTestModel(t)

	var names []string
	for _, item := range m.list.Items() {
		names = append(names, item.(ListItem).name)
	}
	want := []string{
		constants.SearchAsYouType,
		constants.HighlightSearchMatches,
		constants.LimitSearchColumns,
		constants.LimitSearchColumnsTo,
		constants.GroupedSearchMakeUserCategories,
		groupsItem,
		clearItem,
	}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("expected items %v, got %v", want, names)
	}
}

func TestToggleApplyAndQuit(t *testing.T) {
	m, st := newTestModel(t)
	selectItem(t, &m, constants.SearchAsYouType)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.pane.Dirty() {
		t.Fatalf("expected toggle to mark the pane dirty")
	}

	m, cmd := send(t, m, keyRunes("q"))
	if m.quitting {
		t.Fatalf("expected quit to be refused with unapplied changes")
	}
	if cmd == nil || !strings.Contains(m.status, "Unapplied") {
		t.Fatalf("expected unapplied status, got %q", m.status)
	}

	m, _ = send(t, m, keyRunes("a"))
	if m.status != "Applied and saved" {
		t.Fatalf("expected applied status, got %q", m.status)
	}
	if !st.Config.Bool(constants.SearchAsYouType) {
		t.Fatalf("expected search_as_you_type to be saved")
	}
	if !st.Bar.SearchAsYouType() {
		t.Fatalf("expected host to pick up search as you type")
	}

	m, cmd = send(t, m, keyRunes("q"))
	if !m.quitting || cmd == nil {
		t.Fatalf("expected quit after applying")
	}
}

func TestForceQuitDiscards(t *testing.T) {
	m, st := newTestModel(t)
	selectItem(t, &m, constants.HighlightSearchMatches)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, keyRunes("Q"))
	if !m.quitting {
		t.Fatalf("expected Q to quit")
	}
	if st.Config.Bool(constants.HighlightSearchMatches) {
		t.Fatalf("expected discarded change not to be saved")
	}
}

func TestEditListSetting(t *testing.T) {
	m, st := newTestModel(t)
	selectItem(t, &m, constants.LimitSearchColumnsTo)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.inputActive {
		t.Fatalf("expected list setting to open the input")
	}
	m.input.SetValue("title, tags,, ")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, keyRunes("a"))

	got := st.Config.StringSlice(constants.LimitSearchColumnsTo)
	if strings.Join(got, ",") != "title,tags" {
		t.Fatalf("expected parsed column list, got %v", got)
	}
}

func TestGroupedTermEditing(t *testing.T) {
	m, st := newTestModel(t)
	selectItem(t, &m, groupsItem)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.groupsActive {
		t.Fatalf("expected grouped term editor to open")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.Contains(m.groups.err, "nothing to save") {
		t.Fatalf("expected save to be refused before an edit, got %q", m.groups.err)
	}
	if m.pane.Dirty() {
		t.Fatalf("expected refused save to leave the pane clean")
	}

	m, _ = send(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		keyRunes("People"),
		tea.KeyMsg{Type: tea.KeyTab},
		keyRunes("authors, publsher"),
	)
	if !strings.Contains(m.groups.View(), "did you mean publisher?") {
		t.Fatalf("expected suggestion for misspelled column")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.groups.err != "" {
		t.Fatalf("unexpected save error %q", m.groups.err)
	}
	names := m.pane.Editor().Names()
	if strings.Join(names, ",") != ",people" {
		t.Fatalf("expected selector [\"\" people], got %q", names)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.groupsActive {
		t.Fatalf("expected esc to leave the editor")
	}
	if !strings.Contains(m.status, "press a to apply") {
		t.Fatalf("expected apply hint, got %q", m.status)
	}

	// The misspelled column is rejected by the registry on commit.
	m, _ = send(t, m, keyRunes("a"))
	if !strings.HasPrefix(m.status, "Error:") {
		t.Fatalf("expected commit error, got %q", m.status)
	}
	if _, ok := st.Registry.GroupedTerms()["people"]; ok {
		t.Fatalf("expected registry to keep previous grouped terms")
	}
}

func TestGroupedTermDeleteDisabledWhileEditing(t *testing.T) {
	m, _ := newTestModel(t)
	selectItem(t, &m, groupsItem)

	m, _ = send(t, m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyTab},
		keyRunes("a"),
		tea.KeyMsg{Type: tea.KeyTab},
		keyRunes("series"),
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)
	if m.groups.err != "" {
		t.Fatalf("unexpected save error %q", m.groups.err)
	}
	if !m.pane.Editor().DeleteEnabled() {
		t.Fatalf("expected the saved term to be selected with delete enabled")
	}

	m, _ = send(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		keyRunes("x"),
		tea.KeyMsg{Type: tea.KeyCtrlD},
	)
	if !strings.Contains(m.groups.err, "before deleting") {
		t.Fatalf("expected delete to be refused after an edit, got %q", m.groups.err)
	}
	if _, ok := m.pane.Editor().Terms()["a"]; !ok {
		t.Fatalf("expected term a to survive the refused delete")
	}
	if !strings.Contains(m.groups.View(), "delete: off") {
		t.Fatalf("expected the view to show delete disabled")
	}
}

func TestApplyRefusesPendingEdit(t *testing.T) {
	m, _ := newTestModel(t)
	selectItem(t, &m, groupsItem)

	m, _ = send(t, m,
		tea.KeyMsg{Type: tea.KeyEnter},
		tea.KeyMsg{Type: tea.KeyTab},
		keyRunes("x"),
		tea.KeyMsg{Type: tea.KeyEsc},
		keyRunes("a"),
	)
	if !strings.Contains(m.status, "being edited") {
		t.Fatalf("expected pending edit status, got %q", m.status)
	}
}

func TestClearHistoriesConfirmation(t *testing.T) {
	m, st := newTestModel(t)
	if err := st.Bar.Search("dune"); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	m, _ = send(t, m, keyRunes("c"))
	if !m.confirmActive {
		t.Fatalf("expected confirmation prompt")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.confirmActive || len(st.Bar.History()) != 1 {
		t.Fatalf("expected esc to cancel without clearing")
	}

	m, _ = send(t, m, keyRunes("c"), keyRunes("y"))
	if m.status != "Search histories cleared" {
		t.Fatalf("expected cleared status, got %q", m.status)
	}
	if len(st.Bar.History()) != 0 || len(st.Config.StringSlice(constants.MainSearchHistory)) != 0 {
		t.Fatalf("expected histories to be cleared")
	}
}

func TestExplanationView(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(t, m, keyRunes("e"))
	if !m.explain || !strings.Contains(m.View(), "myseries") {
		t.Fatalf("expected explanation to render")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.explain {
		t.Fatalf("expected esc to close the explanation")
	}
}
