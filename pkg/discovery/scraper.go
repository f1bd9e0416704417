package discovery

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
	"golang.org/x/net/html/charset"

	"github.com/feedhawk/feedhawk/pkg/domain"
)

// feedMimeTypes are <link type> values announcing a syndication feed
var feedMimeTypes = map[string]bool{
	"application/rss+xml":   true,
	"application/atom+xml":  true,
	"application/feed+json": true,
	"application/rdf+xml":   true,
}

const defaultMaxPageSize = 2 * 1024 * 1024

// FeedLink is a feed announced by an html page
type FeedLink struct {
	URL   string
	Title string
	Type  string
}

// Scraper finds feed links announced in a page's <head>
type Scraper struct {
	client      *http.Client
	userAgent   string
	maxPageSize int64
}

// ScraperConfig holds scraper parameters, zero values get defaults
type ScraperConfig struct {
	Timeout     time.Duration // page fetch timeout, default 10s
	UserAgent   string
	MaxPageSize int64 // bytes of html to read, default 2MB
}

// NewScraper makes a scraper with the given config
func NewScraper(cfg ScraperConfig) *Scraper {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = domain.DefaultUserAgent
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = defaultMaxPageSize
	}
	return &Scraper{
		client:      &http.Client{Timeout: cfg.Timeout},
		userAgent:   cfg.UserAgent,
		maxPageSize: cfg.MaxPageSize,
	}
}

// Scrape fetches the page at base and returns its feed links in document order.
// Any failure gives an empty result.
func (s *Scraper) Scrape(ctx context.Context, base string) []FeedLink {
	base = NormalizeURL(base)
	if base == "" {
		return nil
	}
	links, err := s.scrape(ctx, base)
	if err != nil {
		lgr.Printf("[DEBUG] scrape %s failed: %v", base, err)
		return nil
	}
	return links
}

func (s *Scraper) scrape(ctx context.Context, base string) ([]FeedLink, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, s.maxPageSize), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode charset: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	// relative hrefs resolve against the final url after redirects
	pageURL := resp.Request.URL
	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if bu, err := pageURL.Parse(strings.TrimSpace(href)); err == nil {
			pageURL = bu
		}
	}

	var res []FeedLink
	seen := map[string]bool{}
	doc.Find("link[href]").Each(func(_ int, sel *goquery.Selection) {
		typ := strings.ToLower(strings.TrimSpace(sel.AttrOr("type", "")))
		if i := strings.Index(typ, ";"); i >= 0 {
			typ = strings.TrimSpace(typ[:i])
		}
		if !feedMimeTypes[typ] {
			return
		}
		abs, err := resolveHref(pageURL, sel.AttrOr("href", ""))
		if err != nil || seen[abs] {
			return
		}
		seen[abs] = true
		res = append(res, FeedLink{URL: abs, Title: strings.TrimSpace(sel.AttrOr("title", "")), Type: typ})
	})
	return res, nil
}

func resolveHref(page *url.URL, href string) (string, error) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", fmt.Errorf("empty href")
	}
	u, err := page.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parse href %q: %w", href, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	return u.String(), nil
}
