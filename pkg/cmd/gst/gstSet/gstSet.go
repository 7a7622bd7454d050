package gstSet

import (
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/constants"
	"github.com/Paintersrp/shelf/internal/logger"
	"github.com/Paintersrp/shelf/internal/state"
)

func NewCmdGstSet(s *state.State) *cobra.Command {
	var category bool

	cmd := &cobra.Command{
		Use:     "set NAME COLUMNS [--category]",
		Aliases: []string{"add"},
		Short:   "Create or replace a grouped search term",
		Long: heredoc.Doc(`
			Set NAME to search the comma separated COLUMNS. An existing grouped
			search term with the same name is replaced.

			Examples:
			  shelf gst set myseries "series, #myseries, #myseries2"
			  shelf gst set people authors,publisher --category
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Save(cmd, s, args[0], args[1], category)
		},
	}

	cmd.Flags().BoolVar(&category, "category", false, "Also show the grouped search term as a user category")

	return cmd
}

// Save stores value under name through the preferences pane, warning about
// entries that do not name a column, then applies the pane.
func Save(cmd *cobra.Command, s *state.State, name, value string, category bool) error {
	log := logger.FromContext(cmd.Context())

	pane, err := s.NewSearchPane()
	if err != nil {
		return err
	}

	editor := pane.Editor()
	if err := editor.Put(name, value); err != nil {
		return err
	}
	for _, hint := range editor.UnknownFields() {
		if hint.Suggestion != "" {
			cmd.PrintErrf("warning: %s: %s, did you mean %s?\n", hint.Value, hint.Reason, hint.Suggestion)
			continue
		}
		cmd.PrintErrf("warning: %s: %s\n", hint.Value, hint.Reason)
	}

	name = strings.ToLower(strings.TrimSpace(name))
	if category {
		current := pane.Settings().List(constants.GroupedSearchMakeUserCategories)
		if !slices.Contains(current, name) {
			if err := pane.SetMakeUserCategories(strings.Join(append(current, name), ", ")); err != nil {
				return err
			}
		}
	}

	if err := pane.Apply(); err != nil {
		return err
	}
	log.V(1).Info("grouped search term saved", "name", name, "category", category)

	cmd.Printf("Saved grouped search term %q\n", name)
	return nil
}

