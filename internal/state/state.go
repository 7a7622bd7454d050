package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"

	"github.com/Paintersrp/shelf/internal/categories"
	"github.com/Paintersrp/shelf/internal/config"
	"github.com/Paintersrp/shelf/internal/constants"
	"github.com/Paintersrp/shelf/internal/fields"
	"github.com/Paintersrp/shelf/internal/library"
	"github.com/Paintersrp/shelf/internal/pathutil"
	"github.com/Paintersrp/shelf/internal/prefs"
	"github.com/Paintersrp/shelf/internal/search"
)

type State struct {
	Config   *config.Config
	Library  *library.DB
	Registry *fields.Registry
	Index    *search.Index
	Bar      *search.Bar
	Browser  *categories.Browser
	Logger   logr.Logger
	Home     string

	// OnChange, when set, is called every time a preferences pane reports
	// a pending change.
	OnChange func()
}

// NewState opens the configuration under the user's home directory and the
// library it points at. A non-empty libraryOverride replaces the configured
// library directory.
func NewState(libraryOverride string, log logr.Logger) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}
	return Open(home, libraryOverride, log)
}

// Open is NewState with an explicit home directory.
func Open(home, libraryOverride string, log logr.Logger) (*State, error) {
	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	libDir := cfg.LibraryPath()
	if libraryOverride != "" {
		libDir = libraryOverride
	}
	libDir = pathutil.ResolveLibraryDir(home, libDir)

	db, err := library.Open(filepath.Join(libDir, constants.LibraryDB))
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}

	s := &State{
		Config:  cfg,
		Library: db,
		Logger:  log,
		Home:    home,
	}
	if err := s.Reload(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Reload rebuilds the registry, the search index and the category model
// from the library.
func (s *State) Reload(ctx context.Context) error {
	columns, err := s.Library.Columns(ctx)
	if err != nil {
		return fmt.Errorf("failed to load custom columns: %w", err)
	}
	books, err := s.Library.Books(ctx)
	if err != nil {
		return fmt.Errorf("failed to load books: %w", err)
	}

	s.Registry = fields.NewRegistry(columns)
	if gst := prefs.GroupedTerms(s.Library.Prefs()); len(gst) > 0 {
		for _, err := range s.Registry.AddValidGroupedSearchTerms(gst) {
			s.Logger.Error(err, "ignoring stored grouped search term")
		}
	}

	s.Index = search.NewIndex(s.Registry, s.searchConfig())
	s.Index.Build(books)

	s.Bar = search.NewBar(s.Index, s.Config, s.Logger)
	s.Bar.SetSearchAsYouType(s.Config.Bool(constants.SearchAsYouType))
	s.Bar.SetHighlightOnly(s.Config.Bool(constants.HighlightSearchMatches))
	s.Bar.DoSearch()

	s.Browser = categories.NewBrowser(func() (categories.Source, error) {
		return s.categorySource(ctx, books)
	}, s.Logger)
	return s.Browser.Rebuild()
}

func (s *State) searchConfig() search.Config {
	return search.Config{
		LimitColumns: s.Config.Bool(constants.LimitSearchColumns),
		Columns:      s.Config.StringSlice(constants.LimitSearchColumnsTo),
	}
}

func (s *State) categorySource(_ context.Context, books []library.Book) (categories.Source, error) {
	store := s.Library.Prefs()
	return categories.Source{
		Books:          books,
		Fields:         s.Registry,
		UserCategories: store.Get(constants.UserCategories, nil),
		MakeFromGroups: prefs.MakeUserCategories(store),
		GroupedTerms:   s.Registry.GroupedTerms(),
	}, nil
}

// NewSearchPane builds the search preferences pane over this state.
func (s *State) NewSearchPane() (*prefs.SearchPane, error) {
	return prefs.NewSearchPane(prefs.PaneDeps{
		Config:   s.Config,
		Library:  s.Library.Prefs(),
		Registry: s.Registry,
		Host:     s,
	})
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}

	return config.Load(home)
}

// Close releases the library database.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Library != nil {
		if err := s.Library.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Library = nil
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
