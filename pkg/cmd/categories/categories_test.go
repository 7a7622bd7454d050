package categories

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-logr/logr"

	"github.com/Paintersrp/shelf/internal/constants"
	"github.com/Paintersrp/shelf/internal/state"
)

func TestCategoriesOutput(t *testing.T) {
	s, err := state.Open(t.TempDir(), "", logr.Discard())
	if err != nil {
		t.Fatalf("state.Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()
	if _, err := s.Library.AddBook(ctx, "Dune", map[string][]string{
		"authors":   {"Frank Herbert"},
		"publisher": {"Chilton"},
	}); err != nil {
		t.Fatalf("AddBook returned error: %v", err)
	}
	store := s.Library.Prefs()
	if err := store.Set(constants.GroupedSearchTerms, map[string][]string{"people": {"authors", "publisher"}}); err != nil {
		t.Fatalf("failed to store grouped terms: %v", err)
	}
	if err := store.Set(constants.GroupedSearchMakeUserCategories, []string{"people"}); err != nil {
		t.Fatalf("failed to store user categories: %v", err)
	}
	if err := s.Reload(ctx); err != nil {
		t.Fatalf("Reload returned error: %v", err)
	}

	execute := func(args ...string) (string, error) {
		cmd := NewCmdCategories(s)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	out, err := execute()
	if err != nil {
		t.Fatalf("categories returned error: %v", err)
	}
	if !strings.Contains(out, "Authors") || strings.Contains(out, "Tags") {
		t.Fatalf("expected only non-empty categories, got %q", out)
	}

	out, err = execute("--user")
	if err != nil {
		t.Fatalf("categories --user returned error: %v", err)
	}
	if strings.Contains(out, "Authors") || !strings.Contains(out, "people (grouped search term)") {
		t.Fatalf("unexpected user category output %q", out)
	}
	if !strings.Contains(out, "Chilton (1)") || !strings.Contains(out, "Frank Herbert (1)") {
		t.Fatalf("expected items of both columns, got %q", out)
	}

	if _, err := execute("@missing"); err == nil {
		t.Fatalf("expected an unknown key to fail")
	}
}
