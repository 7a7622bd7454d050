package columnAdd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/library"
	"github.com/Paintersrp/shelf/internal/state"
)

func NewCmdColumnAdd(s *state.State) *cobra.Command {
	var name string
	var datatype string

	cmd := &cobra.Command{
		Use:   "add LABEL [--name NAME] [--type TYPE]",
		Short: "Add a custom column",
		Long: heredoc.Doc(`
			Add a custom column. Its search term is the label with a # prefix, so
			a column labelled myseries is searched as #myseries.

			Examples:
			  shelf column add myseries --name "My Series" --type series
			  shelf column add read --type bool
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, library.Column{Label: args[0], Name: name, Datatype: datatype})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name (defaults to the label)")
	cmd.Flags().StringVar(&datatype, "type", "text", fmt.Sprintf("Column type (%s)", strings.Join(datatypes(), ", ")))

	return cmd
}

func datatypes() []string {
	out := make([]string, 0, len(library.ValidDatatypes))
	for datatype := range library.ValidDatatypes {
		out = append(out, datatype)
	}
	sort.Strings(out)
	return out
}

func run(cmd *cobra.Command, s *state.State, col library.Column) error {
	ctx := cmd.Context()
	if err := s.Library.AddColumn(ctx, col); err != nil {
		return err
	}
	if err := s.Reload(ctx); err != nil {
		return err
	}

	label := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(col.Label), "#"))
	cmd.Printf("Added column #%s\n", label)
	return nil
}
