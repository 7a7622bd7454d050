package constants

const (
	Version        = `0.1.0`
	ConfigFile     = `gui`
	ConfigFileType = `yaml`
	ConfigDir      = `/.shelf/`
	LibraryDir     = `library`
	LibraryDB      = `metadata.db`

	// HistorySuffix marks GUI config keys holding a search history list.
	HistorySuffix = `_search_history`
)

// GUI config keys.
const (
	SearchAsYouType        = `search_as_you_type`
	HighlightSearchMatches = `highlight_search_matches`
	LimitSearchColumns     = `limit_search_columns`
	LimitSearchColumnsTo   = `limit_search_columns_to`
	MainSearchHistory      = `main_search_history`
	LibraryPath            = `library_path`
)

// Library preference keys.
const (
	GroupedSearchTerms              = `grouped_search_terms`
	GroupedSearchMakeUserCategories = `grouped_search_make_user_categories`
	UserCategories                  = `user_categories`
)
