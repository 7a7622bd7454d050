package categories

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/categories"
	"github.com/Paintersrp/shelf/internal/state"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0AF"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func NewCmdCategories(s *state.State) *cobra.Command {
	var userOnly bool
	var empty bool

	cmd := &cobra.Command{
		Use:     "categories [KEY]",
		Aliases: []string{"cat"},
		Short:   "Show the category browser",
		Example: "shelf categories --user\nshelf categories @myseries",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s, userOnly, empty)
		},
	}

	cmd.Flags().BoolVarP(&userOnly, "user", "u", false, "Only show user categories")
	cmd.Flags().BoolVar(&empty, "empty", false, "Include categories without items")

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State, userOnly, empty bool) error {
	if len(args) == 1 {
		key := strings.TrimSpace(args[0])
		c, ok := s.Browser.Find(key)
		if !ok {
			return fmt.Errorf("no category %q", key)
		}
		render(cmd, c)
		return nil
	}

	for _, c := range s.Browser.Categories() {
		if userOnly && !c.User {
			continue
		}
		if !empty && len(c.Items) == 0 {
			continue
		}
		render(cmd, c)
	}
	return nil
}

func render(cmd *cobra.Command, c categories.Category) {
	header := c.Name
	if c.Generated {
		header += " (grouped search term)"
	}
	cmd.Println(headerStyle.Render(header) + " " + countStyle.Render(c.Key))
	for _, item := range c.Items {
		cmd.Printf("  %s %s\n", item.Name, countStyle.Render(fmt.Sprintf("(%d)", item.Count)))
	}
}
