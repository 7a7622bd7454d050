package gstEdit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/textinput"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/fzf"
	"github.com/Paintersrp/shelf/internal/prefs"
	"github.com/Paintersrp/shelf/internal/state"
	"github.com/Paintersrp/shelf/pkg/cmd/gst/gstSet"
	"github.com/Paintersrp/shelf/pkg/shared/interactive"
)

// Prompts are swapped out in tests.
var (
	pickGroup = func(terms map[string][]string, query string) (string, error) {
		return fzf.NewGroupPicker(terms, "Select grouped search term to edit").RunWithQuery(query)
	}
	promptValue = func(name, current string) (string, error) {
		input := textinput.New(fmt.Sprintf("Columns for %s:", name))
		input.InitialValue = current
		return input.RunPrompt()
	}
	isInteractive = interactive.Stdin
)

func NewCmdGstEdit(s *state.State) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:     "edit [NAME] [--value COLUMNS]",
		Aliases: []string{"e"},
		Short:   "Edit a grouped search term",
		Long: heredoc.Doc(`
			Pick a grouped search term with a fuzzy finder, or name it, then edit
			its columns. Without --value the current columns are offered for
			editing in a prompt.

			Examples:
			  shelf gst edit
			  shelf gst edit myseries --value "series, #myseries"
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, s, value)
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "New comma separated columns")

	return cmd
}

func run(cmd *cobra.Command, args []string, s *state.State, value string) error {
	terms := prefs.GroupedTerms(s.Library.Prefs())

	var name string
	if len(args) == 1 {
		name = strings.ToLower(strings.TrimSpace(args[0]))
		if _, ok := terms[name]; !ok {
			if !isInteractive() {
				return fmt.Errorf("no grouped search term named %q", name)
			}
			picked, err := pickGroup(terms, name)
			if err != nil {
				return err
			}
			name = picked
		}
	} else {
		if !isInteractive() {
			return errors.New("a grouped search term name is required when not running in a terminal")
		}
		picked, err := pickGroup(terms, "")
		if err != nil {
			return err
		}
		name = picked
	}

	if value == "" {
		if !isInteractive() {
			return errors.New("--value is required when not running in a terminal")
		}
		edited, err := promptValue(name, strings.Join(terms[name], ", "))
		if err != nil {
			return err
		}
		value = edited
	}

	return gstSet.Save(cmd, s, name, value, false)
}
