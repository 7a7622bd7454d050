package gst

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/state"
	"github.com/Paintersrp/shelf/pkg/cmd/gst/gstEdit"
	"github.com/Paintersrp/shelf/pkg/cmd/gst/gstExport"
	"github.com/Paintersrp/shelf/pkg/cmd/gst/gstImport"
	"github.com/Paintersrp/shelf/pkg/cmd/gst/gstList"
	"github.com/Paintersrp/shelf/pkg/cmd/gst/gstRemove"
	"github.com/Paintersrp/shelf/pkg/cmd/gst/gstSet"
	"github.com/Paintersrp/shelf/pkg/cmd/gst/gstShow"
)

func NewCmdGst(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gst",
		Aliases: []string{"groups"},
		Short:   "Manage grouped search terms",
		Long: heredoc.Doc(`
			A grouped search term is a name that searches several columns at once.
			With "myseries" set to "series, #myseries, #myseries2", the search
			myseries:adhoc looks for adhoc in all three columns.

			Grouped search term names are stored in lower case and cannot reuse
			the name of a column or of a user category.
		`),
	}

	cmd.AddCommand(
		gstList.NewCmdGstList(s),
		gstShow.NewCmdGstShow(s),
		gstSet.NewCmdGstSet(s),
		gstRemove.NewCmdGstRemove(s),
		gstEdit.NewCmdGstEdit(s),
		gstExport.NewCmdGstExport(s),
		gstImport.NewCmdGstImport(s),
	)

	return cmd
}
