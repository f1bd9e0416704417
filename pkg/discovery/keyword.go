package discovery

import (
	"net/url"
	"strings"

	"github.com/feedhawk/feedhawk/pkg/domain"
)

// SiteMapper maps a free-text keyword to well-known site base URLs
type SiteMapper struct {
	buckets   []Bucket
	fallback  []string
	directory []CatalogFeed
}

// MappedSite is a site base URL with the category of the bucket that produced it
type MappedSite struct {
	URL      string
	Category domain.Category
}

// NewSiteMapper makes a mapper over the catalog buckets, fallback templates and directory feeds
func NewSiteMapper(c *Catalog) *SiteMapper {
	return &SiteMapper{buckets: c.Buckets, fallback: c.FallbackSites, directory: c.Directory}
}

// Sites returns the sites of all matching buckets in bucket order without duplicates.
// With no matching bucket it returns the fallback sites built for the keyword.
func (m *SiteMapper) Sites(keyword string) []MappedSite {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return nil
	}

	var res []MappedSite
	seen := map[string]bool{}
	for _, b := range m.buckets {
		if !matchTerms(kw, b.Terms) {
			continue
		}
		for _, site := range b.Sites {
			if seen[site] {
				continue
			}
			seen[site] = true
			res = append(res, MappedSite{URL: site, Category: b.Category})
		}
	}
	if len(res) > 0 {
		return res
	}

	escaped := url.PathEscape(kw)
	for _, tpl := range m.fallback {
		res = append(res, MappedSite{URL: strings.ReplaceAll(tpl, "{keyword}", escaped), Category: domain.CategoryGeneral})
	}
	return res
}

// Directory returns curated feeds whose terms or category match the keyword
func (m *SiteMapper) Directory(keyword string) []domain.SearchResult {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return nil
	}
	var res []domain.SearchResult
	for _, f := range m.directory {
		if matchTerms(kw, f.Terms) || strings.Contains(strings.ToLower(string(f.Category)), kw) {
			res = append(res, f.result(domain.StrategyDirectory))
		}
	}
	return res
}

// matchTerms reports whether any term contains kw or kw contains the term
func matchTerms(kw string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(t, kw) || strings.Contains(kw, t) {
			return true
		}
	}
	return false
}
