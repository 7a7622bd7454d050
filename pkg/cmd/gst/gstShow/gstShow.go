package gstShow

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/prefs"
	"github.com/Paintersrp/shelf/internal/state"
)

var writeClipboard = clipboard.WriteAll

func NewCmdGstShow(s *state.State) *cobra.Command {
	var copyValue bool

	cmd := &cobra.Command{
		Use:     "show NAME [--copy]",
		Aliases: []string{"get"},
		Short:   "Show the columns a grouped search term searches",
		Example: "shelf gst show myseries --copy",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, args[0], copyValue)
		},
	}

	cmd.Flags().BoolVarP(&copyValue, "copy", "c", false, "Copy the column list to the clipboard")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, name string, copyValue bool) error {
	name = strings.ToLower(strings.TrimSpace(name))
	values, ok := prefs.GroupedTerms(s.Library.Prefs())[name]
	if !ok {
		return fmt.Errorf("no grouped search term named %q", name)
	}

	value := strings.Join(values, ", ")
	cmd.Printf("%s: %s\n", name, value)

	if copyValue {
		if err := writeClipboard(value); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cmd.Println("Copied to clipboard.")
	}
	return nil
}
