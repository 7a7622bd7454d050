package prefs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/Paintersrp/shelf/internal/constants"
)

// PaneDeps are the collaborators of a SearchPane.
type PaneDeps struct {
	// Config holds GUI preferences and search histories.
	Config HistoryStore
	// Library holds preferences stored with the library.
	Library  Store
	Registry Registry
	Host     Host
}

// SearchPane is the search preferences page: a handful of toggles plus the
// grouped search term editor. It is used in two phases, ValidateAndStage
// then Commit, after which RefreshHost pushes the result to the host.
type SearchPane struct {
	settings *Settings
	editor   *GroupedTermEditor
	config   HistoryStore
	host     Host

	mucChanged bool
}

func NewSearchPane(deps PaneDeps) (*SearchPane, error) {
	if deps.Config == nil || deps.Library == nil || deps.Registry == nil || deps.Host == nil {
		return nil, fmt.Errorf("search pane: config, library, registry and host are required")
	}

	settings := NewSettings()
	settings.Register(constants.SearchAsYouType, deps.Config, KindBool)
	settings.Register(constants.HighlightSearchMatches, deps.Config, KindBool)
	settings.Register(constants.LimitSearchColumns, deps.Config, KindBool)
	settings.Register(constants.LimitSearchColumnsTo, deps.Config, KindList)

	if len(stringList(deps.Library.Get(constants.GroupedSearchMakeUserCategories, nil))) == 0 {
		if err := deps.Library.Set(constants.GroupedSearchMakeUserCategories, []string{}); err != nil {
			return nil, fmt.Errorf("search pane: %w", err)
		}
	}
	settings.Register(constants.GroupedSearchMakeUserCategories, deps.Library, KindList)

	editor := NewGroupedTermEditor(deps.Library, deps.Registry, deps.Host)
	if err := editor.Load(); err != nil {
		return nil, err
	}

	return &SearchPane{
		settings: settings,
		editor:   editor,
		config:   deps.Config,
		host:     deps.Host,
	}, nil
}

func (p *SearchPane) Settings() *Settings {
	return p.settings
}

func (p *SearchPane) Editor() *GroupedTermEditor {
	return p.editor
}

// SetMakeUserCategories replaces the list of grouped terms that get a
// generated user category.
func (p *SearchPane) SetMakeUserCategories(text string) error {
	if err := p.settings.SetText(constants.GroupedSearchMakeUserCategories, text); err != nil {
		return err
	}
	p.mucChanged = true
	return nil
}

func (p *SearchPane) UserCategoriesChanged() bool {
	return p.mucChanged
}

// Dirty reports whether anything awaits Commit.
func (p *SearchPane) Dirty() bool {
	return p.editor.Changed() || p.settings.Changed()
}

// ValidateAndStage reports edits in the name and value boxes that were
// never saved into the grouped terms.
func (p *SearchPane) ValidateAndStage() error {
	if p.editor.SaveEnabled() {
		return &ValidationError{Name: strings.TrimSpace(p.editor.NameText()), Err: ErrPendingEdit}
	}
	return nil
}

// Commit writes the grouped terms, then the plain settings.
func (p *SearchPane) Commit() error {
	if err := p.editor.Commit(); err != nil {
		return err
	}
	return p.settings.Commit()
}

// Apply runs ValidateAndStage, Commit and RefreshHost in order, stopping at
// the first error.
func (p *SearchPane) Apply() error {
	if err := p.ValidateAndStage(); err != nil {
		return err
	}
	if err := p.Commit(); err != nil {
		return err
	}
	p.RefreshHost()
	return nil
}

// RefreshHost pushes committed preferences to the host.
func (p *SearchPane) RefreshHost() {
	if p.mucChanged {
		p.host.RebuildCategoryModel()
		p.mucChanged = false
	}
	p.host.ApplySearchAsYouType(cast.ToBool(p.config.Get(constants.SearchAsYouType, false)))
	p.host.ApplyHighlightMatches(cast.ToBool(p.config.Get(constants.HighlightSearchMatches, false)))
	p.host.RerunSearch()
}

// ClearHistories empties every list-valued search history preference and
// the host's in-memory history.
func (p *SearchPane) ClearHistories() error {
	if err := ClearHistories(p.config); err != nil {
		return err
	}
	p.host.ClearSearchHistoryCache()
	return nil
}

// ClearHistories empties every list-valued default of store whose key ends
// with the search history suffix.
func ClearHistories(store HistoryStore) error {
	defaults := store.Defaults()
	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !strings.HasSuffix(key, constants.HistorySuffix) {
			continue
		}
		switch defaults[key].(type) {
		case []string, []any:
		default:
			continue
		}
		if err := store.Set(key, []string{}); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return nil
}
