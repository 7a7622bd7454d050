package prefs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Paintersrp/shelf/internal/constants"
)

// blankIndex is the selector entry that stands for "no grouped term".
const blankIndex = 0

// FieldHint flags a value entry the registry does not recognise.
type FieldHint struct {
	Value      string
	Suggestion string
	Reason     string
}

// GroupedTermEditor edits the grouped search terms of a library. It owns a
// working copy of the mapping and the enabled state of the save and delete
// actions; nothing reaches the store until Commit.
type GroupedTermEditor struct {
	store    Store
	registry Registry
	host     Host

	terms       map[string][]string
	origKeys    map[string]bool
	searchTerms map[string]bool
	candidates  []string

	// names is the selector content; names[0] is always the blank entry.
	names         []string
	current       int
	nameText      string
	valueText     string
	catCandidates []string

	deleteEnabled bool
	saveEnabled   bool
	changed       bool
}

func NewGroupedTermEditor(store Store, registry Registry, host Host) *GroupedTermEditor {
	return &GroupedTermEditor{
		store:    store,
		registry: registry,
		host:     host,
		terms:    make(map[string][]string),
		names:    []string{""},
	}
}

// Load reads the grouped terms from the store and snapshots the names the
// registry already uses for searching.
func (e *GroupedTermEditor) Load() error {
	if e.store == nil || e.registry == nil || e.host == nil {
		return fmt.Errorf("grouped search terms: editor requires a store, a registry and a host")
	}

	e.terms = termMap(e.store.Get(constants.GroupedSearchTerms, map[string][]string{}))
	e.origKeys = make(map[string]bool, len(e.terms))
	for name := range e.terms {
		e.origKeys[name] = true
	}

	e.searchTerms = make(map[string]bool)
	for _, term := range e.registry.SearchTerms() {
		e.searchTerms[term] = true
	}

	e.candidates = e.candidates[:0]
	for _, key := range e.registry.AllFieldKeys() {
		m, ok := e.registry.Metadata(key)
		if !ok || !m.SearchEnabled() || !m.IsCategory {
			continue
		}
		e.candidates = append(e.candidates, key)
	}
	sort.Strings(e.candidates)

	e.fillBox(nil)
	e.nameText, e.valueText = "", ""
	e.changed = false
	e.deleteEnabled = false
	e.saveEnabled = false
	return nil
}

// Select makes index the current selector entry and loads its values into
// the value box. Index 0 clears both boxes.
func (e *GroupedTermEditor) Select(index int) error {
	if index < 0 || index >= len(e.names) {
		return fmt.Errorf("grouped search terms: selection %d out of range", index)
	}
	e.current = index
	e.indexChanged(index)
	return nil
}

func (e *GroupedTermEditor) indexChanged(index int) {
	e.deleteEnabled = index != blankIndex
	e.saveEnabled = false
	if index == blankIndex {
		e.nameText, e.valueText = "", ""
		return
	}
	name := e.names[index]
	e.nameText = name
	e.valueText = strings.Join(e.terms[name], ",")
}

// SetNameText records a user edit of the name box.
func (e *GroupedTermEditor) SetNameText(text string) {
	e.nameText = text
	e.textChanged()
}

// SetValueText records a user edit of the value box.
func (e *GroupedTermEditor) SetValueText(text string) {
	e.valueText = text
	e.textChanged()
}

// An edit invalidates deleting the current selection until it is saved or
// another entry is selected.
func (e *GroupedTermEditor) textChanged() {
	e.deleteEnabled = false
	e.saveEnabled = true
}

// Save validates the name and value boxes and stores them as a grouped
// term, renaming the selected term when the name differs. It is refused
// until one of the boxes has been edited.
func (e *GroupedTermEditor) Save() error {
	if !e.saveEnabled {
		return &ValidationError{Err: ErrSaveDisabled}
	}
	name := strings.ToLower(strings.TrimSpace(e.nameText))
	if name == "" {
		return &ValidationError{Err: ErrBlankName}
	}

	origName := ""
	if e.current != blankIndex {
		origName = e.names[e.current]
	}

	if name != origName {
		if e.searchTerms[name] && !e.origKeys[name] {
			return &ValidationError{Name: name, Err: ErrSearchTermCollision}
		}
		for _, category := range e.userCategoryNames() {
			if strings.ToLower(category) == name {
				return &ValidationError{Name: name, Err: ErrUserCategoryCollision}
			}
		}
	}

	values := ParseList(e.valueText)
	if len(values) == 0 {
		return &ValidationError{Name: name, Err: ErrBlankValue}
	}

	if origName != "" && name != origName {
		delete(e.terms, origName)
	}
	e.terms[name] = values
	e.changed = true
	e.fillBox(&name)
	e.host.NotifyChanged()
	return nil
}

// Delete removes the selected grouped term. It is refused once either box
// has been edited, until the edit is saved or another entry is selected.
func (e *GroupedTermEditor) Delete() error {
	if e.current == blankIndex {
		return &ValidationError{Err: ErrDeleteBlank}
	}
	name := e.names[e.current]
	if !e.deleteEnabled {
		return &ValidationError{Name: name, Err: ErrDeleteDisabled}
	}

	if _, ok := e.terms[name]; !ok {
		return nil
	}
	delete(e.terms, name)
	blank := ""
	e.fillBox(&blank)
	e.changed = true
	e.host.NotifyChanged()
	return nil
}

// Put saves value under name, selecting name first when it already exists
// so the save updates it in place.
func (e *GroupedTermEditor) Put(name, value string) error {
	idx := e.Index(strings.ToLower(strings.TrimSpace(name)))
	if idx < 0 {
		idx = blankIndex
	}
	if err := e.Select(idx); err != nil {
		return err
	}
	e.SetNameText(name)
	e.SetValueText(value)
	return e.Save()
}

// Remove selects and deletes name.
func (e *GroupedTermEditor) Remove(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	idx := e.Index(name)
	if idx < 0 {
		return &ValidationError{Name: name, Err: ErrNoSuchGroup}
	}
	if err := e.Select(idx); err != nil {
		return err
	}
	return e.Delete()
}

func (e *GroupedTermEditor) userCategoryNames() []string {
	return mapKeys(e.store.Get(constants.UserCategories, map[string]any{}))
}

// fillBox rebuilds the selector from the working map. Repopulating resets
// the selection to the blank entry without running the selection
// behaviour; only an explicit selectName selects afterwards.
func (e *GroupedTermEditor) fillBox(selectName *string) {
	names := make([]string, 0, len(e.terms))
	for name := range e.terms {
		names = append(names, name)
	}
	sort.Strings(names)

	e.catCandidates = append([]string(nil), names...)
	e.names = append([]string{""}, names...)
	e.current = blankIndex

	if selectName == nil {
		return
	}
	if *selectName == "" {
		e.indexChanged(blankIndex)
		return
	}
	for i, name := range e.names {
		if name == *selectName {
			e.current = i
			e.indexChanged(i)
			return
		}
	}
}

// Commit writes the working map to the store and registers it, when it
// changed since the last commit. A map the registry rejects is not written.
func (e *GroupedTermEditor) Commit() error {
	if !e.changed {
		return nil
	}

	terms := e.Terms()
	if err := e.registry.ValidateGroupedSearchTerms(terms); err != nil {
		return &CommitError{Op: "validate grouped search terms", Err: err}
	}
	if err := e.store.Set(constants.GroupedSearchTerms, terms); err != nil {
		return &CommitError{Op: "store grouped search terms", Err: err}
	}
	if err := e.registry.AddGroupedSearchTerms(terms); err != nil {
		return &CommitError{Op: "register grouped search terms", Err: err}
	}
	e.changed = false
	return nil
}

// UnknownFields lists value box entries that do not name a column, with a
// suggestion when one is close. Saving is never blocked by them.
func (e *GroupedTermEditor) UnknownFields() []FieldHint {
	var hints []FieldHint
	for _, value := range ParseList(e.valueText) {
		lowered := strings.ToLower(value)
		if _, grouped := e.terms[lowered]; grouped {
			hints = append(hints, FieldHint{Value: value, Reason: "grouped terms cannot contain other grouped terms"})
			continue
		}
		if e.registry.Expand(lowered) != nil {
			continue
		}
		suggestion, _ := e.registry.Suggest(lowered)
		hints = append(hints, FieldHint{Value: value, Suggestion: suggestion, Reason: "unknown column"})
	}
	return hints
}

// Names returns the selector entries, blank entry first.
func (e *GroupedTermEditor) Names() []string {
	return append([]string(nil), e.names...)
}

func (e *GroupedTermEditor) Current() int { return e.current }
func (e *GroupedTermEditor) NameText() string { return e.nameText }
func (e *GroupedTermEditor) ValueText() string { return e.valueText }
func (e *GroupedTermEditor) DeleteEnabled() bool { return e.deleteEnabled }
func (e *GroupedTermEditor) SaveEnabled() bool { return e.saveEnabled }
func (e *GroupedTermEditor) Changed() bool { return e.changed }
func (e *GroupedTermEditor) Candidates() []string { return append([]string(nil), e.candidates...) }
func (e *GroupedTermEditor) CategoryCandidates() []string {
	return append([]string(nil), e.catCandidates...)
}

// Index returns the selector index of name, or -1.
func (e *GroupedTermEditor) Index(name string) int {
	for i, n := range e.names {
		if i != blankIndex && n == name {
			return i
		}
	}
	return -1
}

// Terms returns a deep copy of the working map.
func (e *GroupedTermEditor) Terms() map[string][]string {
	out := make(map[string][]string, len(e.terms))
	for name, values := range e.terms {
		out[name] = append([]string(nil), values...)
	}
	return out
}
