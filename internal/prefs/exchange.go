package prefs

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Exchange is the file form of a library's grouped search terms.
type Exchange struct {
	Terms          map[string][]string `json:"grouped_search_terms" yaml:"grouped_search_terms" toml:"grouped_search_terms"`
	UserCategories []string            `json:"make_user_categories,omitempty" yaml:"make_user_categories,omitempty" toml:"make_user_categories,omitempty"`
}

var exchangeFormats = map[string]string{
	".yaml": "yaml",
	".yml":  "yaml",
	".json": "json",
	".toml": "toml",
}

// FormatFromPath guesses an exchange format from a file extension.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if format, ok := exchangeFormats[ext]; ok {
		return format, nil
	}
	return "", fmt.Errorf("cannot tell the format of %q, use --format", path)
}

func EncodeExchange(w io.Writer, format string, doc Exchange) error {
	if doc.Terms == nil {
		doc.Terms = map[string][]string{}
	}

	switch strings.ToLower(format) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "toml":
		return toml.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("unsupported format %q (use yaml, json or toml)", format)
}

func DecodeExchange(r io.Reader, format string) (Exchange, error) {
	var doc Exchange
	var err error

	switch strings.ToLower(format) {
	case "yaml", "yml":
		err = yaml.NewDecoder(r).Decode(&doc)
		if err == io.EOF {
			err = nil
		}
	case "json":
		err = json.NewDecoder(r).Decode(&doc)
	case "toml":
		_, err = toml.NewDecoder(r).Decode(&doc)
	default:
		return doc, fmt.Errorf("unsupported format %q (use yaml, json or toml)", format)
	}
	if err != nil {
		return doc, fmt.Errorf("failed to decode grouped search terms: %w", err)
	}
	return doc, nil
}
