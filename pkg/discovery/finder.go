package discovery

import (
	"cmp"
	"context"
	"errors"
	"net"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/feedhawk/feedhawk/pkg/domain"
)

const defaultMaxResults = 50

// Finder runs all discovery strategies for a query and merges their results
type Finder struct {
	catalog    *Catalog
	classifier *Classifier
	prober     *Prober
	scraper    *Scraper
	channels   *ChannelResolver
	sites      *SiteMapper
	maxResults int
	maxWorkers int
}

// FinderConfig holds finder parameters, zero values get defaults
type FinderConfig struct {
	Catalog      *Catalog
	ProbeTimeout time.Duration // per HEAD probe, default 5s
	PageTimeout  time.Duration // per html page fetch, default 10s
	UserAgent    string
	MaxResults   int // default 50
	MaxWorkers   int // concurrent strategies and sites, default 8
}

// NewFinder makes a finder over the given catalog
func NewFinder(cfg FinderConfig) (*Finder, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("no catalog")
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 8
	}
	classifier := NewClassifier(cfg.Catalog.Channels.PlatformTokens)
	prober := NewProber(ProberConfig{Timeout: cfg.ProbeTimeout, UserAgent: cfg.UserAgent, Paths: cfg.Catalog.ProbePaths})
	return &Finder{
		catalog:    cfg.Catalog,
		classifier: classifier,
		prober:     prober,
		scraper:    NewScraper(ScraperConfig{Timeout: cfg.PageTimeout, UserAgent: cfg.UserAgent}),
		channels:   NewChannelResolver(prober, classifier, cfg.Catalog.Channels),
		sites:      NewSiteMapper(cfg.Catalog),
		maxResults: cfg.MaxResults,
		maxWorkers: cfg.MaxWorkers,
	}, nil
}

// Popular returns the curated feeds offered for an empty query
func (f *Finder) Popular() []domain.SearchResult {
	res := make([]domain.SearchResult, 0, len(f.catalog.Popular))
	for _, feed := range f.catalog.Popular {
		res = append(res, feed.result(domain.StrategyPopular))
	}
	return f.merge(res)
}

// Classify returns the query kind as Search sees it, with the catalog's platform tokens
func (f *Finder) Classify(query string) QueryKind {
	return f.classifier.Classify(query)
}

// Search returns deduplicated feed candidates for the query ordered by strategy priority.
// Failed strategies contribute nothing, so the result may be empty but never an error.
func (f *Finder) Search(ctx context.Context, query string) []domain.SearchResult {
	q := strings.TrimSpace(query)
	if q == "" {
		return f.Popular()
	}

	kind := f.Classify(q)
	keyword := strings.ToLower(q)

	var direct, htmlLinks, channel, directory []domain.SearchResult
	g := errgroup.Group{}
	g.SetLimit(f.maxWorkers)

	switch kind {
	case KindDirectURL:
		base := NormalizeURL(q)
		keyword = siteKeyword(base)
		g.Go(func() error {
			direct = f.probeResults(ctx, base, domain.CategoryWebsite, domain.StrategyWebsite)
			return nil
		})
		g.Go(func() error {
			htmlLinks = f.scrapeResults(ctx, base, domain.CategoryWebsite, domain.StrategyHTMLLink)
			return nil
		})
	case KindChannelHandle:
		keyword = strings.ToLower(f.classifier.ChannelText(q))
		g.Go(func() error {
			channel = f.channels.Resolve(ctx, q)
			return nil
		})
	}

	// keyword path runs for every kind, each site writes into its own slot
	sites := f.sites.Sites(keyword)
	keywordProbe := make([][]domain.SearchResult, len(sites))
	keywordHTML := make([][]domain.SearchResult, len(sites))
	for i, site := range sites {
		g.Go(func() error {
			keywordProbe[i] = f.probeResults(ctx, site.URL, site.Category, domain.StrategyKeyword)
			return nil
		})
		g.Go(func() error {
			keywordHTML[i] = f.scrapeResults(ctx, site.URL, site.Category, domain.StrategyKeywordHTML)
			return nil
		})
	}
	directory = f.sites.Directory(keyword)
	_ = g.Wait()

	all := make([]domain.SearchResult, 0, len(direct)+len(htmlLinks)+len(channel)+len(directory))
	all = append(all, direct...)
	all = append(all, htmlLinks...)
	all = append(all, channel...)
	all = append(all, flatten(keywordProbe)...)
	all = append(all, flatten(keywordHTML)...)
	all = append(all, directory...)

	res := f.merge(all)
	lgr.Printf("[DEBUG] search %q, kind %s, keyword %q, %d candidates, %d results", q, kind, keyword, len(all), len(res))
	return res
}

// merge orders results by strategy priority, keeping the slot order within a strategy, then
// drops duplicates by canonical url so the higher ranked strategy wins, and caps the result
func (f *Finder) merge(in []domain.SearchResult) []domain.SearchResult {
	ranked := slices.Clone(in)
	slices.SortStableFunc(ranked, func(a, b domain.SearchResult) int {
		return cmp.Compare(a.Strategy.Priority(), b.Strategy.Priority())
	})

	res := make([]domain.SearchResult, 0, min(len(ranked), f.maxResults))
	seen := make(map[string]bool, len(ranked))
	for _, r := range ranked {
		key := CanonicalURL(r.URL)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		res = append(res, r)
		if len(res) >= f.maxResults {
			break
		}
	}
	return res
}

func (f *Finder) probeResults(ctx context.Context, base string, cat domain.Category, strategy domain.Strategy) []domain.SearchResult {
	host := hostName(base)
	var res []domain.SearchResult
	for _, u := range f.prober.Probe(ctx, base) {
		res = append(res, domain.SearchResult{
			Title:       host + " RSS Feed",
			URL:         u,
			Description: "RSS feed from " + host,
			Category:    cat,
			Strategy:    strategy,
		})
	}
	return res
}

func (f *Finder) scrapeResults(ctx context.Context, base string, cat domain.Category, strategy domain.Strategy) []domain.SearchResult {
	host := hostName(base)
	var res []domain.SearchResult
	for _, link := range f.scraper.Scrape(ctx, base) {
		title := link.Title
		if title == "" {
			title = host + " RSS Feed"
		}
		res = append(res, domain.SearchResult{
			Title:       title,
			URL:         link.URL,
			Description: "Feed announced by " + host,
			Category:    cat,
			Strategy:    strategy,
		})
	}
	return res
}

func flatten(slots [][]domain.SearchResult) []domain.SearchResult {
	var res []domain.SearchResult
	for _, s := range slots {
		res = append(res, s...)
	}
	return res
}

func hostName(u string) string {
	pu, err := url.Parse(NormalizeURL(u))
	if err != nil || pu.Hostname() == "" {
		return u
	}
	return pu.Hostname()
}

// siteKeyword reduces a site url to its distinctive host label, "www.techcrunch.com" -> "techcrunch"
func siteKeyword(u string) string {
	host := strings.TrimPrefix(strings.ToLower(hostName(u)), "www.")
	if net.ParseIP(host) != nil {
		return ""
	}
	if i := strings.LastIndex(host, "."); i > 0 {
		host = host[:i]
	}
	return host
}
