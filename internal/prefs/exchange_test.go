package prefs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeFormats(t *testing.T) {
	doc := Exchange{
		Terms:          map[string][]string{"myseries": {"series", "#myseries"}},
		UserCategories: []string{"myseries"},
	}

	for _, format := range []string{"yaml", "json", "toml"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeExchange(&buf, format, doc))
			assert.Contains(t, buf.String(), "grouped_search_terms")

			got, err := DecodeExchange(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, doc, got)
		})
	}
}

func TestDecodeExchangeYAMLDocument(t *testing.T) {
	in := strings.NewReader("grouped_search_terms:\n  people: [authors, publisher]\n")
	doc, err := DecodeExchange(in, "yml")
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"people": {"authors", "publisher"}}, doc.Terms)
	assert.Empty(t, doc.UserCategories)
}

func TestExchangeRejectsUnknownFormat(t *testing.T) {
	require.Error(t, EncodeExchange(&bytes.Buffer{}, "xml", Exchange{}))
	_, err := DecodeExchange(strings.NewReader(""), "xml")
	require.Error(t, err)

	format, err := FormatFromPath("/tmp/terms.YML")
	require.NoError(t, err)
	assert.Equal(t, "yaml", format)

	_, err = FormatFromPath("terms.txt")
	require.Error(t, err)
}
