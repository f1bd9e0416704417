package discovery

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/feedhawk/feedhawk/pkg/domain"
)

//go:embed catalog.yml
var embeddedCatalog []byte

// Catalog holds the curated lookup tables used by discovery strategies
type Catalog struct {
	ProbePaths    []string       `yaml:"probe_paths"`
	Popular       []CatalogFeed  `yaml:"popular"`
	Buckets       []Bucket       `yaml:"buckets"`
	FallbackSites []string       `yaml:"fallback_sites"` // templates with {keyword}
	Directory     []CatalogFeed  `yaml:"directory"`
	Channels      ChannelCatalog `yaml:"channels"`
}

// CatalogFeed is a curated feed endpoint
type CatalogFeed struct {
	Title       string          `yaml:"title"`
	URL         string          `yaml:"url"`
	Description string          `yaml:"description"`
	Category    domain.Category `yaml:"category"`
	Terms       []string        `yaml:"terms"`
}

// Bucket maps a topical keyword family to well-known sites
type Bucket struct {
	Name     string          `yaml:"name"`
	Category domain.Category `yaml:"category"`
	Terms    []string        `yaml:"terms"`
	Sites    []string        `yaml:"sites"`
}

// ChannelCatalog describes video-platform feed templates and well-known channels
type ChannelCatalog struct {
	ChannelTemplate string           `yaml:"channel_template"` // {id} placeholder
	UserTemplate    string           `yaml:"user_template"`    // {id} placeholder
	PlatformTokens  []string         `yaml:"platform_tokens"`
	Popular         []PopularChannel `yaml:"popular"`
}

// PopularChannel maps a channel name to its id
type PopularChannel struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
}

// DefaultCatalog returns the embedded catalog
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(embeddedCatalog)
}

// LoadCatalog reads a catalog from a YAML file, empty path means the embedded one
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates catalog YAML
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	for _, p := range c.ProbePaths {
		if !strings.HasPrefix(p, "/") {
			return fmt.Errorf("probe path %q must start with /", p)
		}
	}
	for _, t := range c.FallbackSites {
		if !strings.Contains(t, "{keyword}") {
			return fmt.Errorf("fallback site %q has no {keyword} placeholder", t)
		}
	}
	if c.Channels.ChannelTemplate != "" && !strings.Contains(c.Channels.ChannelTemplate, "{id}") {
		return fmt.Errorf("channel template %q has no {id} placeholder", c.Channels.ChannelTemplate)
	}
	if c.Channels.UserTemplate != "" && !strings.Contains(c.Channels.UserTemplate, "{id}") {
		return fmt.Errorf("user template %q has no {id} placeholder", c.Channels.UserTemplate)
	}

	for i := range c.Buckets {
		b := &c.Buckets[i]
		if b.Name == "" {
			return fmt.Errorf("bucket #%d has no name", i)
		}
		if b.Category == "" {
			b.Category = domain.CategoryGeneral
		}
		b.Terms = lowerAll(b.Terms)
		if len(b.Terms) == 0 {
			b.Terms = []string{strings.ToLower(b.Name)}
		}
	}

	for _, feeds := range [][]CatalogFeed{c.Popular, c.Directory} {
		for i := range feeds {
			if feeds[i].URL == "" {
				return fmt.Errorf("feed %q has no url", feeds[i].Title)
			}
			if feeds[i].Category == "" {
				feeds[i].Category = domain.CategoryGeneral
			}
			feeds[i].Terms = lowerAll(feeds[i].Terms)
		}
	}

	c.Channels.PlatformTokens = lowerAll(c.Channels.PlatformTokens)
	for i := range c.Channels.Popular {
		c.Channels.Popular[i].Name = strings.ToLower(c.Channels.Popular[i].Name)
	}
	return nil
}

// result converts a curated feed into a search result tagged with the given strategy
func (f CatalogFeed) result(strategy domain.Strategy) domain.SearchResult {
	return domain.SearchResult{
		Title:       f.Title,
		URL:         f.URL,
		Description: f.Description,
		Category:    f.Category,
		Strategy:    strategy,
	}
}

func lowerAll(ss []string) []string {
	res := make([]string, 0, len(ss))
	for _, s := range ss {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			res = append(res, s)
		}
	}
	return res
}
