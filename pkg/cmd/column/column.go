package column

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/state"
	"github.com/Paintersrp/shelf/pkg/cmd/column/columnAdd"
	"github.com/Paintersrp/shelf/pkg/cmd/column/columnList"
)

func NewCmdColumn(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage custom columns",
	}

	cmd.AddCommand(
		columnAdd.NewCmdColumnAdd(s),
		columnList.NewCmdColumnList(s),
	)

	return cmd
}
