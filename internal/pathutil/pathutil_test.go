package pathutil

import (
	"path/filepath"
	"testing"
)

func TestNormalizePathConvertsSeparators(t *testing.T) {
	got := NormalizePath(`library\books//metadata`)
	want := filepath.Join("library", "books", "metadata")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if NormalizePath("") != "" {
		t.Fatalf("expected empty path to stay empty")
	}
}

func TestResolveLibraryDir(t *testing.T) {
	home := filepath.Join(string(filepath.Separator), "home", "reader")

	tests := map[string]string{
		"~":                        home,
		"~/Books":                  filepath.Join(home, "Books"),
		"Books/../Library":         filepath.Join(home, "Library"),
		filepath.Join(home, "lib"): filepath.Join(home, "lib"),
		"  ":                       "",
	}
	for in, want := range tests {
		if got := ResolveLibraryDir(home, in); got != want {
			t.Fatalf("ResolveLibraryDir(%q): expected %q, got %q", in, want, got)
		}
	}
}
