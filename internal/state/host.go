package state

import (
	"github.com/Paintersrp/shelf/internal/prefs"
)

var _ prefs.Host = (*State)(nil)

// NotifyChanged records that a preferences pane holds unapplied changes.
func (s *State) NotifyChanged() {
	s.Logger.V(1).Info("preferences changed")
	if s.OnChange != nil {
		s.OnChange()
	}
}

func (s *State) RebuildCategoryModel() {
	if err := s.Browser.Rebuild(); err != nil {
		s.Logger.Error(err, "failed to rebuild category model")
	}
}

func (s *State) ApplySearchAsYouType(enabled bool) {
	s.Logger.V(1).Info("apply search as you type", "enabled", enabled)
	s.Bar.SetSearchAsYouType(enabled)
}

func (s *State) ApplyHighlightMatches(enabled bool) {
	s.Logger.V(1).Info("apply highlight matches", "enabled", enabled)
	s.Bar.SetHighlightOnly(enabled)
}

// RerunSearch picks up the column limit from the config and runs the
// current query again.
func (s *State) RerunSearch() {
	s.Index.SetConfig(s.searchConfig())
	s.Bar.DoSearch()
}

func (s *State) ClearSearchHistoryCache() {
	s.Logger.V(1).Info("search history cleared")
	s.Bar.ClearHistory()
}
