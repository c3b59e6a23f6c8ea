package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAggregatorTitle(t *testing.T) {
	lists := DefaultLists()

	tests := []struct {
		title string
		want  bool
	}{
		{"Top 10 Wood Manufacturers in Italy", true},
		{"The Best Custom Furniture Makers", true},
		{"Buyer's Guide to Oak Suppliers", true},
		{"2024 Review: Luxury Furniture", true},
		{"Acme Woodworks", false},
		{"Falegnameria Rossi srl", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, lists.IsAggregatorTitle(tt.title))
		})
	}
}

func TestIsBlacklistedDomain(t *testing.T) {
	lists := DefaultLists()

	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.alibaba.com/suppliers/wood", true},
		{"http://it.alibaba.com/company/123", true},
		{"https://www.reddit.com/r/woodworking", true},
		{"https://business.yellowpages.it/acme", true},
		{"https://www.acmewoodworks.it", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, lists.IsBlacklistedDomain(tt.url))
		})
	}
}

func TestCleanCompanyName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Acme Woodworks - Official Site", "Acme Woodworks"},
		{"Acme Woodworks | Luxury Furniture", "Acme Woodworks"},
		{"Acme Woodworks – Home", "Acme Woodworks"},
		{"  Acme Woodworks  ", "Acme Woodworks"},
		{"Acme Woodworks", "Acme Woodworks"},
		// A leading separator must not produce an empty name.
		{" - Acme", "- Acme"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanCompanyName(tt.title), "title %q", tt.title)
	}
}

func TestNameSet(t *testing.T) {
	s := NewNameSet("Acme Woodworks")
	assert.True(t, s.Has("Acme Woodworks"))
	assert.False(t, s.Has("Rossi Mobili"))

	s.Add("Rossi Mobili")
	assert.True(t, s.Has("Rossi Mobili"))

	s.Add("")
	assert.False(t, s.Has(""))
}

func TestLoadLists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lists.yaml")
	content := "blacklist_domains:\n  - example-market.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lists, err := LoadLists(path)
	require.NoError(t, err)

	assert.True(t, lists.IsBlacklistedDomain("https://example-market.com/x"))
	assert.False(t, lists.IsBlacklistedDomain("https://alibaba.com"), "file overrides the domain list")
	// Aggregator words absent from the file keep defaults.
	assert.True(t, lists.IsAggregatorTitle("Top suppliers"))
}

func TestLoadLists_MissingFile(t *testing.T) {
	_, err := LoadLists(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
