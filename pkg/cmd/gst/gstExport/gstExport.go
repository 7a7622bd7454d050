package gstExport

import (
	"bytes"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/prefs"
	"github.com/Paintersrp/shelf/internal/state"
)

func NewCmdGstExport(s *state.State) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export [--format yaml|json|toml] [--output FILE]",
		Short: "Export grouped search terms",
		Long: heredoc.Doc(`
			Write the grouped search terms of the library, and the names shown as
			user categories, to stdout or a file.

			Examples:
			  shelf gst export
			  shelf gst export --format toml --output terms.toml
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: yaml, json or toml (default from --output, else yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write instead of stdout")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, format, output string) error {
	if format == "" {
		format = "yaml"
		if output != "" {
			guessed, err := prefs.FormatFromPath(output)
			if err != nil {
				return err
			}
			format = guessed
		}
	}

	store := s.Library.Prefs()
	doc := prefs.Exchange{
		Terms:          prefs.GroupedTerms(store),
		UserCategories: prefs.MakeUserCategories(store),
	}

	var buf bytes.Buffer
	if err := prefs.EncodeExchange(&buf, format, doc); err != nil {
		return err
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	cmd.Printf("Exported %d grouped search terms to %s\n", len(doc.Terms), output)
	return nil
}
