package gstImport

import (
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/constants"
	"github.com/Paintersrp/shelf/internal/prefs"
	"github.com/Paintersrp/shelf/internal/state"
)

func NewCmdGstImport(s *state.State) *cobra.Command {
	var format string
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE [--format yaml|json|toml] [--replace]",
		Short: "Import grouped search terms",
		Long: heredoc.Doc(`
			Read grouped search terms from a file written by export. Terms in the
			file replace terms of the same name; --replace also deletes terms the
			file does not mention. Every term is validated as if it were entered
			in the editor, and the import stops at the first rejected term.

			Examples:
			  shelf gst import terms.yaml
			  shelf gst import terms.json --replace
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, args[0], format, replace)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Input format: yaml, json or toml (default from the file extension)")
	cmd.Flags().BoolVar(&replace, "replace", false, "Delete grouped search terms missing from the file")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, path, format string, replace bool) error {
	if format == "" {
		guessed, err := prefs.FormatFromPath(path)
		if err != nil {
			return err
		}
		format = guessed
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := prefs.DecodeExchange(f, format)
	if err != nil {
		return err
	}

	pane, err := s.NewSearchPane()
	if err != nil {
		return err
	}
	editor := pane.Editor()

	incoming := make(map[string][]string, len(doc.Terms))
	for name, values := range doc.Terms {
		incoming[strings.ToLower(strings.TrimSpace(name))] = values
	}

	if replace {
		for name := range editor.Terms() {
			if _, ok := incoming[name]; ok {
				continue
			}
			if err := editor.Remove(name); err != nil {
				return err
			}
		}
	}

	names := make([]string, 0, len(incoming))
	for name := range incoming {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := editor.Put(name, strings.Join(incoming[name], ",")); err != nil {
			return err
		}
	}

	if len(doc.UserCategories) > 0 {
		current := pane.Settings().List(constants.GroupedSearchMakeUserCategories)
		merged := append([]string(nil), current...)
		for _, name := range doc.UserCategories {
			name = strings.ToLower(strings.TrimSpace(name))
			if name != "" && !slices.Contains(merged, name) {
				merged = append(merged, name)
			}
		}
		if len(merged) != len(current) {
			if err := pane.SetMakeUserCategories(strings.Join(merged, ", ")); err != nil {
				return err
			}
		}
	}

	if err := pane.Apply(); err != nil {
		return err
	}

	cmd.Printf("Imported %d grouped search terms from %s\n", len(names), path)
	return nil
}
