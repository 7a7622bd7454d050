package gstRemove

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/state"
)

func NewCmdGstRemove(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"rm"},
		Short:   "Delete a grouped search term",
		Example: "shelf gst rm myseries",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, args[0])
		},
	}

	return cmd
}

func run(cmd *cobra.Command, s *state.State, name string) error {
	pane, err := s.NewSearchPane()
	if err != nil {
		return err
	}
	if err := pane.Editor().Remove(name); err != nil {
		return err
	}
	if err := pane.Apply(); err != nil {
		return err
	}

	cmd.Printf("Removed grouped search term %q\n", strings.ToLower(strings.TrimSpace(name)))
	return nil
}
