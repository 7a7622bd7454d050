package prefs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/shelf/internal/fields"
	"github.com/Paintersrp/shelf/internal/library"
)

type memStore struct {
	values   map[string]any
	defaults map[string]any
	failSet  error
	sets     []string
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]any), defaults: make(map[string]any)}
}

func (s *memStore) Get(key string, def any) any {
	if v, ok := s.values[key]; ok {
		return v
	}
	if v, ok := s.defaults[key]; ok {
		return v
	}
	return def
}

func (s *memStore) Set(key string, value any) error {
	if s.failSet != nil {
		return s.failSet
	}
	s.values[key] = value
	s.sets = append(s.sets, key)
	return nil
}

func (s *memStore) Contains(key string) bool {
	_, ok := s.values[key]
	return ok
}

func (s *memStore) Defaults() map[string]any {
	return s.defaults
}

type recordingHost struct {
	calls     []string
	asYouType *bool
	highlight *bool
}

func (h *recordingHost) NotifyChanged() { h.calls = append(h.calls, "changed") }
func (h *recordingHost) RebuildCategoryModel() { h.calls = append(h.calls, "rebuild") }
func (h *recordingHost) RerunSearch() { h.calls = append(h.calls, "rerun") }
func (h *recordingHost) ClearSearchHistoryCache() { h.calls = append(h.calls, "clear") }

func (h *recordingHost) ApplySearchAsYouType(enabled bool) {
	h.asYouType = &enabled
	h.calls = append(h.calls, "as-you-type")
}

func (h *recordingHost) ApplyHighlightMatches(enabled bool) {
	h.highlight = &enabled
	h.calls = append(h.calls, "highlight")
}

func (h *recordingHost) count(call string) int {
	n := 0
	for _, c := range h.calls {
		if c == call {
			n++
		}
	}
	return n
}

func testRegistry() *fields.Registry {
	return fields.NewRegistry([]library.Column{
		{Label: "myseries", Name: "My Series", Datatype: "series"},
		{Label: "myseries2", Name: "More Series", Datatype: "series"},
		{Label: "notes", Name: "Notes", Datatype: "comments"},
	})
}

func loadedEditor(t *testing.T, store *memStore) (*GroupedTermEditor, *recordingHost) {
	t.Helper()
	host := &recordingHost{}
	e := NewGroupedTermEditor(store, testRegistry(), host)
	require.NoError(t, e.Load())
	return e, host
}

func requireValidation(t *testing.T, err, want error) {
	t.Helper()
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "expected *ValidationError, got %T: %v", err, err)
	require.ErrorIs(t, err, want)
}
