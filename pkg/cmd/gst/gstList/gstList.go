package gstList

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/prefs"
	"github.com/Paintersrp/shelf/internal/state"
)

var (
	nameStyle = lipgloss.NewStyle().Bold(true)
	markStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func NewCmdGstList(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List grouped search terms",
		Example: "shelf gst list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, s *state.State) error {
	store := s.Library.Prefs()
	terms := prefs.GroupedTerms(store)
	if len(terms) == 0 {
		cmd.Println("No grouped search terms defined.")
		return nil
	}

	names := make([]string, 0, len(terms))
	for name := range terms {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := prefs.MakeUserCategories(store)
	for _, name := range names {
		line := nameStyle.Render(name) + "  " + strings.Join(terms[name], ", ")
		if slices.Contains(categories, name) {
			line += " " + markStyle.Render("(user category)")
		}
		cmd.Println(line)
	}
	return nil
}
