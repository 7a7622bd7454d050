package interactive

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// Stdin reports whether prompts can be shown: stdin is a terminal and the
// process is not a test binary.
func Stdin() bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	return !strings.HasSuffix(filepath.Base(os.Args[0]), ".test")
}
