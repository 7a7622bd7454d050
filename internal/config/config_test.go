package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/shelf/internal/config"
	"github.com/Paintersrp/shelf/internal/constants"
)

func writeConfig(t *testing.T, home string, data map[string]any) {
	t.Helper()

	configPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}

	raw, err := yaml.Marshal(data)
	if err != nil {
		t.Fatalf("failed to marshal config data: %v", err)
	}

	if err := os.WriteFile(configPath, raw, 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}

func TestEnsureConfigExistsCreatesEmptyFile(t *testing.T) {
	home := t.TempDir()

	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists returned error: %v", err)
	}

	if _, err := os.Stat(config.GetConfigPath(home)); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists returned error: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Bool(constants.SearchAsYouType) {
		t.Fatal("expected search as you type to default to false")
	}

	want := []string{"title", "authors", "tags", "series", "publisher"}
	if got := cfg.StringSlice(constants.LimitSearchColumnsTo); !slices.Equal(got, want) {
		t.Fatalf("expected default column limit %v, got %v", want, got)
	}

	wantLibrary := filepath.Join(home, constants.ConfigDir, constants.LibraryDir)
	if cfg.LibraryPath() != wantLibrary {
		t.Fatalf("expected library path %q, got %q", wantLibrary, cfg.LibraryPath())
	}
}

func TestLoadReadsFileValues(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, map[string]any{
		constants.HighlightSearchMatches: true,
		constants.MainSearchHistory:      []string{"tag:fiction", "author:le guin"},
	})

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if !cfg.Bool(constants.HighlightSearchMatches) {
		t.Fatal("expected highlight flag from file")
	}

	history := cfg.StringSlice(constants.MainSearchHistory)
	if len(history) != 2 || history[0] != "tag:fiction" {
		t.Fatalf("unexpected history: %#v", history)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	home := t.TempDir()
	configPath := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config directory: %v", err)
	}
	if err := os.WriteFile(configPath, []byte("search_as_you_type: [unterminated"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := config.Load(home)
	if err == nil {
		t.Fatal("expected load to fail for malformed yaml")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadMissingFileReturnsNotExist(t *testing.T) {
	_, err := config.Load(t.TempDir())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestSetPersistsChanges(t *testing.T) {
	home := t.TempDir()
	if err := config.EnsureConfigExists(home); err != nil {
		t.Fatalf("EnsureConfigExists returned error: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if err := cfg.Set(constants.SearchAsYouType, true); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := cfg.Set("viewer_search_history", []string{"dune"}); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	reloaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}

	if !reloaded.Bool(constants.SearchAsYouType) {
		t.Fatal("expected persisted search as you type flag")
	}
	if got := reloaded.StringSlice("viewer_search_history"); !slices.Equal(got, []string{"dune"}) {
		t.Fatalf("expected persisted history, got %#v", got)
	}
}

func TestGetFallsBackToDefaultForUnknownKey(t *testing.T) {
	cfg := config.New(t.TempDir())

	if got := cfg.Get("no_such_key", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %#v", got)
	}
	if cfg.Contains("no_such_key") {
		t.Fatal("expected unknown key to be absent")
	}
	if !cfg.Contains(constants.MainSearchHistory) {
		t.Fatal("expected default key to be present")
	}
}

func TestDefaultsReturnsCopy(t *testing.T) {
	first := config.Defaults()
	first[constants.LimitSearchColumnsTo].([]string)[0] = "mutated"

	second := config.Defaults()
	if second[constants.LimitSearchColumnsTo].([]string)[0] != "title" {
		t.Fatal("expected Defaults to return an independent copy")
	}
}
