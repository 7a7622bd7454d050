package search

// Config describes index behavior.
type Config struct {
	// LimitColumns restricts free text to Columns instead of every
	// search-enabled field.
	LimitColumns bool
	// Columns holds search terms or field keys used for free text when
	// LimitColumns is set. Grouped terms are expanded.
	Columns []string
}

// Term is one token of a query. Location is empty for free text.
type Term struct {
	Location string
	Value    string
}

// Query represents a parsed search request. Every term must match.
type Query struct {
	Raw   string
	Terms []Term
}

// Result captures a book considered by a search.
type Result struct {
	BookID int64
	Title  string
	// Matched is false only for rows kept by highlight mode.
	Matched   bool
	Snippet   string
	MatchFrom string
}
