package history

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/state"
	"github.com/Paintersrp/shelf/pkg/cmd/history/historyClear"
	"github.com/Paintersrp/shelf/pkg/cmd/history/historyList"
)

func NewCmdHistory(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear search histories",
	}

	cmd.AddCommand(
		historyList.NewCmdHistoryList(s),
		historyClear.NewCmdHistoryClear(s),
	)

	return cmd
}
