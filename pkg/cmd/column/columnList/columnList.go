package columnList

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/state"
)

func NewCmdColumnList(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List custom columns",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			columns, err := s.Library.Columns(cmd.Context())
			if err != nil {
				return err
			}
			if len(columns) == 0 {
				cmd.Println("No custom columns defined.")
				return nil
			}
			for _, col := range columns {
				cmd.Printf("%-20s %-12s %s\n", col.Key(), col.Datatype, col.Name)
			}
			return nil
		},
	}

	return cmd
}
