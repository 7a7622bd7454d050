package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// ResolveLibraryDir turns a configured or flag-supplied library directory
// into an absolute path. A leading ~ and relative paths are taken from home.
func ResolveLibraryDir(home, dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ""
	}

	switch {
	case dir == "~":
		dir = home
	case strings.HasPrefix(dir, "~/"), strings.HasPrefix(dir, `~\`):
		dir = filepath.Join(home, dir[2:])
	}

	dir = NormalizePath(dir)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(home, dir)
	}
	return dir
}
