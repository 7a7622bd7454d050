package settings

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/state"
	"github.com/Paintersrp/shelf/internal/tui/settings"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"s"},
		Short:   "Search preferences menu",
		Long:    "This command opens the search preferences, including the grouped search term editor.",
		Example: "shelf settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			pane, err := s.NewSearchPane()
			if err != nil {
				return err
			}
			return settings.Run(pane)
		},
	}

	return cmd
}
