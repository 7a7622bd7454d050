package settings

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/shelf/internal/prefs"
)

// GlamourStyle picks the explanation style for the terminal background.
func GlamourStyle() string {
	if termenv.HasDarkBackground() {
		return "dracula"
	}
	return "light"
}

// renderExplanation renders the grouped term help, falling back to the raw
// markdown when rendering fails.
func renderExplanation(style string, width int) string {
	md := prefs.GroupedTermsHelp + "\n" + prefs.UserCategoryHelp
	if width <= 0 {
		width = 100
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(min(width, 100)),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
