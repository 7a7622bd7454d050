package historyList

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/state"
)

func NewCmdHistoryList(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recent searches, most recent first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history := s.Bar.History()
			if len(history) == 0 {
				cmd.Println("No searches recorded.")
				return nil
			}
			for _, query := range history {
				cmd.Println(query)
			}
			return nil
		},
	}

	return cmd
}
