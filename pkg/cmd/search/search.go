package search

import (
	"errors"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/state"
	searchtui "github.com/Paintersrp/shelf/internal/tui/search"
	"github.com/Paintersrp/shelf/pkg/shared/interactive"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	snippetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	isInteractive = interactive.Stdin
)

func NewCmdSearch(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search [QUERY...]",
		Aliases: []string{"find", "f"},
		Short:   "Search the library",
		Long: heredoc.Doc(`
			Search the library. Words are matched anywhere, and location:value
			restricts a word to one column or grouped search term. Quote values
			that contain spaces. Without a query an interactive search bar opens.

			Examples:
			  shelf search dune
			  shelf search tags:fiction 'authors:"le guin"'
			  shelf search myseries:adhoc
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State) error {
	if len(args) == 0 {
		if !isInteractive() {
			return errors.New("a query is required when not running in a terminal")
		}
		return searchtui.Run(s.Bar)
	}

	if err := s.Bar.Search(strings.Join(args, " ")); err != nil {
		return err
	}

	matched := 0
	for _, r := range s.Bar.Results() {
		if !r.Matched {
			continue
		}
		matched++
		cmd.Printf("%4d  %s\n", r.BookID, titleStyle.Render(r.Title))
		if r.Snippet != "" {
			cmd.Printf("      %s\n", snippetStyle.Render(r.Snippet))
		}
	}

	if matched == 0 {
		cmd.Println("No books match.")
		return nil
	}
	cmd.Printf("%d results\n", matched)
	return nil
}
