package book

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/state"
	"github.com/Paintersrp/shelf/pkg/cmd/book/bookAdd"
	"github.com/Paintersrp/shelf/pkg/cmd/book/bookList"
)

func NewCmdBook(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "book",
		Aliases: []string{"b"},
		Short:   "Add or list books",
	}

	cmd.AddCommand(
		bookAdd.NewCmdBookAdd(s),
		bookList.NewCmdBookList(s),
	)

	return cmd
}
