package bookAdd

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/fields"
	"github.com/Paintersrp/shelf/internal/logger"
	"github.com/Paintersrp/shelf/internal/prefs"
	"github.com/Paintersrp/shelf/internal/state"
)

func NewCmdBookAdd(s *state.State) *cobra.Command {
	var title string
	var values []string

	cmd := &cobra.Command{
		Use:   "add --title TITLE [--field KEY=VALUES]...",
		Short: "Add a book to the library",
		Long: heredoc.Doc(`
			Add a book. Each --field sets one column to a comma separated list of
			values; custom columns are named with their # prefix.

			Examples:
			  shelf book add --title Dune --field authors="Frank Herbert" --field tags="Science Fiction"
			  shelf book add --title "The Dispossessed" --field "#myseries=Hainish Cycle"
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseFields(s.Registry, values)
			if err != nil {
				return err
			}
			return run(cmd, s, title, parsed)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Title of the book")
	cmd.Flags().StringArrayVarP(&values, "field", "f", nil, "Column values as key=value1,value2")
	cmd.MarkFlagRequired("title")

	return cmd
}

func parseFields(registry *fields.Registry, values []string) (map[string][]string, error) {
	out := make(map[string][]string, len(values))
	for _, raw := range values {
		key, list, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid field %q: expected key=values", raw)
		}

		key = strings.ToLower(strings.TrimSpace(key))
		m, known := lookup(registry, key)
		if !known || m.Key == "title" || m.Key == "uuid" {
			if suggestion, ok := registry.Suggest(key); ok {
				return nil, fmt.Errorf("unknown column %q, did you mean %s?", key, suggestion)
			}
			return nil, fmt.Errorf("unknown column %q", key)
		}

		out[m.Key] = append(out[m.Key], prefs.ParseList(list)...)
	}
	return out, nil
}

// lookup resolves a field key or a column search term such as "tag".
// Grouped search terms name several columns and are not accepted.
func lookup(registry *fields.Registry, key string) (fields.Metadata, bool) {
	if m, ok := registry.Metadata(key); ok {
		return m, true
	}
	if _, grouped := registry.GroupedTerms()[key]; grouped {
		return fields.Metadata{}, false
	}
	if keys := registry.Expand(key); len(keys) == 1 {
		return registry.Metadata(keys[0])
	}
	return fields.Metadata{}, false
}

func run(cmd *cobra.Command, s *state.State, title string, values map[string][]string) error {
	ctx := cmd.Context()

	book, err := s.Library.AddBook(ctx, title, values)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).V(1).Info("book added", "id", book.ID, "uuid", book.UUID)

	if err := s.Reload(ctx); err != nil {
		return err
	}

	cmd.Printf("Added book %q (%d, %s)\n", book.Title, book.ID, book.UUID)
	return nil
}
