package historyClear

import (
	"errors"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/state"
	"github.com/Paintersrp/shelf/pkg/shared/interactive"
)

var (
	confirm = func() (bool, error) {
		return confirmation.New("Clear all search histories?", confirmation.No).RunPrompt()
	}
	isInteractive = interactive.Stdin
)

func NewCmdHistoryClear(s *state.State) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear [--yes]",
		Short: "Clear every saved search history",
		Long: heredoc.Doc(`
			Empty every search history kept in the configuration file. Other
			settings are left alone.

			Examples:
			  shelf history clear
			  shelf history clear --yes
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Clear without asking")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, yes bool) error {
	if !yes {
		if !isInteractive() {
			return errors.New("refusing to clear search histories without --yes")
		}
		ok, err := confirm()
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Search histories kept.")
			return nil
		}
	}

	pane, err := s.NewSearchPane()
	if err != nil {
		return err
	}
	if err := pane.ClearHistories(); err != nil {
		return err
	}

	cmd.Println("Search histories cleared.")
	return nil
}
