package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedhawk/feedhawk/pkg/domain"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, []string{"/rss", "/rss.xml", "/feed", "/feed.xml", "/feeds/all.atom.xml",
		"/index.rdf", "/atom.xml", "/index.xml", "/news/rss", "/blog/rss", "/rss/news"}, c.ProbePaths)
	require.Len(t, c.Popular, 5)
	assert.Equal(t, "BBC World News", c.Popular[0].Title)
	assert.Equal(t, domain.CategoryNews, c.Popular[0].Category)

	names := make([]string, 0, len(c.Buckets))
	for _, b := range c.Buckets {
		names = append(names, b.Name)
		assert.NotEmpty(t, b.Sites, b.Name)
		assert.True(t, b.Category.Valid(), b.Name)
	}
	assert.Equal(t, []string{"ai", "tech", "news", "science", "gaming", "finance", "sports", "business", "health",
		"entertainment"}, names)

	assert.Equal(t, []string{"https://www.reddit.com/r/{keyword}", "https://medium.com/tag/{keyword}"}, c.FallbackSites)
	assert.Equal(t, "https://www.youtube.com/feeds/videos.xml?channel_id={id}", c.Channels.ChannelTemplate)
	assert.Equal(t, "https://www.youtube.com/feeds/videos.xml?user={id}", c.Channels.UserTemplate)
	require.Len(t, c.Channels.Popular, 4)
	assert.Equal(t, PopularChannel{Name: "mkbhd", ID: "UCBJycsmduvYEL83R_U4JriQ"}, c.Channels.Popular[0])
	assert.NotEmpty(t, c.Directory)
}

func TestParseCatalog_Defaults(t *testing.T) {
	c, err := ParseCatalog([]byte(`
buckets:
  - name: Rust
    sites: [https://blog.rust-lang.org]
directory:
  - {title: Some Feed, url: "https://example.com/feed", terms: [Some, " Thing "]}
channels:
  platform_tokens: [YouTube]
  popular:
    - {name: MKBHD, id: UC1}
`))
	require.NoError(t, err)
	require.Len(t, c.Buckets, 1)
	assert.Equal(t, []string{"rust"}, c.Buckets[0].Terms)
	assert.Equal(t, domain.CategoryGeneral, c.Buckets[0].Category)
	assert.Equal(t, []string{"some", "thing"}, c.Directory[0].Terms)
	assert.Equal(t, domain.CategoryGeneral, c.Directory[0].Category)
	assert.Equal(t, []string{"youtube"}, c.Channels.PlatformTokens)
	assert.Equal(t, "mkbhd", c.Channels.Popular[0].Name)
}

func TestParseCatalog_Errors(t *testing.T) {
	tests := []struct {
		name, data, err string
	}{
		{"bad yaml", "probe_paths: [", "parse catalog"},
		{"relative path", "probe_paths: [rss]", `probe path "rss" must start with /`},
		{"no keyword", "fallback_sites: [https://example.com]", "no {keyword} placeholder"},
		{"no id", "channels: {channel_template: https://example.com}", "no {id} placeholder"},
		{"no user id", "channels: {user_template: https://example.com}", "no {id} placeholder"},
		{"unnamed bucket", "buckets: [{sites: [https://example.com]}]", "bucket #0 has no name"},
		{"feed without url", "popular: [{title: x}]", `feed "x" has no url`},
		{"bad category", "popular: [{title: x, url: https://example.com, category: Knitting}]", "unknown category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Buckets)

	fname := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(fname, []byte("probe_paths: [/only.xml]\n"), 0o600))
	c, err = LoadCatalog(fname)
	require.NoError(t, err)
	assert.Equal(t, []string{"/only.xml"}, c.ProbePaths)
	assert.Empty(t, c.Buckets)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
