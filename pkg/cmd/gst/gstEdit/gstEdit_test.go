package gstEdit

import (
	"context"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/prefs"
	"github.com/Paintersrp/shelf/internal/state"
)

func stubPrompts(t *testing.T, picked, value string) *[]string {
	t.Helper()
	var calls []string

	oldPick, oldPrompt, oldInteractive := pickGroup, promptValue, isInteractive
	t.Cleanup(func() {
		pickGroup, promptValue, isInteractive = oldPick, oldPrompt, oldInteractive
	})

	pickGroup = func(terms map[string][]string, query string) (string, error) {
		calls = append(calls, "pick:"+query)
		return picked, nil
	}
	promptValue = func(name, current string) (string, error) {
		calls = append(calls, "prompt:"+current)
		return value, nil
	}
	isInteractive = func() bool { return true }
	return &calls
}

func TestRunPicksAndPrompts(t *testing.T) {
	s, err := state.Open(t.TempDir(), "", logr.Discard())
	if err != nil {
		t.Fatalf("state.Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if err := s.Library.Prefs().Set("grouped_search_terms", map[string][]string{"people": {"authors"}}); err != nil {
		t.Fatalf("failed to seed grouped terms: %v", err)
	}

	calls := stubPrompts(t, "people", "authors, publisher")
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	if err := run(cmd, []string{"peple"}, s, ""); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if strings.Join(*calls, "|") != "pick:peple|prompt:authors" {
		t.Fatalf("unexpected prompt calls %v", *calls)
	}
	if got := prefs.GroupedTerms(s.Library.Prefs())["people"]; strings.Join(got, ",") != "authors,publisher" {
		t.Fatalf("expected edited columns, got %v", got)
	}
}

func TestRunRequiresTerminalWithoutArguments(t *testing.T) {
	s, err := state.Open(t.TempDir(), "", logr.Discard())
	if err != nil {
		t.Fatalf("state.Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	old := isInteractive
	isInteractive = func() bool { return false }
	t.Cleanup(func() { isInteractive = old })

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	if err := run(cmd, nil, s, ""); err == nil {
		t.Fatalf("expected an error without a terminal")
	}
}
