package root

import (
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Paintersrp/shelf/internal/state"
	"github.com/Paintersrp/shelf/pkg/cmd/book"
	"github.com/Paintersrp/shelf/pkg/cmd/categories"
	"github.com/Paintersrp/shelf/pkg/cmd/column"
	"github.com/Paintersrp/shelf/pkg/cmd/gst"
	"github.com/Paintersrp/shelf/pkg/cmd/history"
	"github.com/Paintersrp/shelf/pkg/cmd/search"
	"github.com/Paintersrp/shelf/pkg/cmd/settings"
)

// Options holds the global flags. They are read before the state is
// opened, since the library flag decides which library is loaded.
type Options struct {
	Library string
	Verbose bool
}

// ParseOptions picks the global flags out of args and ignores the rest.
func ParseOptions(args []string) Options {
	var opts Options
	fs := pflag.NewFlagSet("shelf", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	addGlobalFlags(fs, &opts)
	_ = fs.Parse(args)
	return opts
}

func addGlobalFlags(fs *pflag.FlagSet, opts *Options) {
	fs.StringVarP(&opts.Library, "library", "l", "", "Library directory to use instead of the configured one")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Write debug logs to stderr")
}

func NewCmdRoot(s *state.State, opts *Options) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "shelf",
		Short: "Search and organise a book library from the terminal.",
		Long: heredoc.Doc(`
			shelf keeps a small book library and lets you search it with field
			prefixes such as tags:fiction or authors:le guin.

			Grouped search terms combine several columns under one search name,
			and can be shown as user categories. Running shelf without a
			subcommand opens the search preferences.

			Examples:
			  shelf gst set myseries "series, #myseries, #myseries2"
			  shelf search myseries:dune
			  shelf settings
		`),
		SilenceUsage: true,
		RunE:         settings.NewCmdSettings(s).RunE,
	}

	addGlobalFlags(cmd.PersistentFlags(), opts)

	cmd.AddCommand(
		settings.NewCmdSettings(s),
		gst.NewCmdGst(s),
		history.NewCmdHistory(s),
		search.NewCmdSearch(s),
		categories.NewCmdCategories(s),
		book.NewCmdBook(s),
		column.NewCmdColumn(s),
	)

	return cmd, nil
}
