package bookList

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/state"
)

func NewCmdBookList(s *state.State) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every book",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := s.Library.Books(cmd.Context())
			if err != nil {
				return err
			}
			if len(books) == 0 {
				cmd.Println("The library is empty.")
				return nil
			}

			for _, b := range books {
				cmd.Printf("%4d  %s\n", b.ID, b.Title)
				if !verbose {
					continue
				}
				for _, key := range s.Registry.AllFieldKeys() {
					if values := b.Fields[key]; len(values) > 0 {
						cmd.Printf("      %s: %s\n", key, strings.Join(values, ", "))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "fields", "F", false, "Show the column values of each book")

	return cmd
}
