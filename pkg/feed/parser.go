package feed

import (
	"context"
	"fmt"
	"html"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/feedhawk/feedhawk/pkg/domain"
)

const maxFeedSize = 10 * 1024 * 1024

// Parser fetches and parses RSS/Atom feeds
type Parser struct {
	client    *http.Client
	userAgent string
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// Config holds parser parameters, zero values get defaults
type Config struct {
	ConnectTimeout time.Duration // default 10s
	ReadTimeout    time.Duration // time to response headers, default 15s
	UserAgent      string
}

// NewParser creates a new feed parser
func NewParser(cfg Config) *Parser {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 15 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = domain.DefaultUserAgent
	}
	return &Parser{
		client: &http.Client{
			Timeout: cfg.ConnectTimeout + cfg.ReadTimeout,
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
				TLSHandshakeTimeout:   cfg.ConnectTimeout,
				ResponseHeaderTimeout: cfg.ReadTimeout,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				IdleConnTimeout:       90 * time.Second,
			},
		},
		userAgent: cfg.UserAgent,
		sanitizer: bluemonday.StrictPolicy(),
		now:       time.Now,
	}
}

// Parse fetches and parses a feed from the given URL
func (p *Parser) Parse(ctx context.Context, url string) (*domain.ParsedFeed, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	feed, err := gofeed.NewParser().Parse(io.LimitReader(body, maxFeedSize))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	result := &domain.ParsedFeed{
		FeedMeta: domain.FeedMeta{
			Title:       p.clean(feed.Title),
			Description: p.clean(feed.Description),
			SiteLink:    feed.Link,
			FeedURL:     feed.FeedLink,
		},
		Articles: make([]domain.Article, 0, len(feed.Items)),
	}
	if result.FeedURL == "" {
		result.FeedURL = url
	}

	for _, item := range feed.Items {
		result.Articles = append(result.Articles, p.article(feed.Title, item))
	}
	return result, nil
}

// Validate parses the feed and reports the outcome as a verdict, never as an error
func (p *Parser) Validate(ctx context.Context, url string) Verdict {
	feed, err := p.Parse(ctx, url)
	if err != nil {
		return InvalidFeed{Reason: "failed to parse feed: " + err.Error()}
	}
	return ValidFeed{Feed: feed}
}

func (p *Parser) article(feedTitle string, item *gofeed.Item) domain.Article {
	art := domain.Article{
		Title:       p.clean(item.Title),
		URL:         strings.TrimSpace(item.Link),
		Description: p.clean(item.Description),
		Content:     p.clean(item.Content),
	}
	if art.Content == "" {
		art.Content = art.Description
	}

	switch {
	case item.GUID != "":
		art.GUID = item.GUID
	case item.Link != "":
		art.GUID = item.Link
	default:
		art.GUID = fmt.Sprintf("%s-%s", feedTitle, item.Title)
	}
	if art.URL == "" {
		art.URL = art.GUID
	}

	if item.Author != nil {
		art.Author = strings.TrimSpace(item.Author.Name)
	}

	switch {
	case item.PublishedParsed != nil:
		art.Published = *item.PublishedParsed
	case item.UpdatedParsed != nil:
		art.Published = *item.UpdatedParsed
	default:
		art.Published = p.now()
	}
	return art
}

// clean strips markup, decodes entities and collapses whitespace
func (p *Parser) clean(s string) string {
	if s == "" {
		return ""
	}
	text := html.UnescapeString(p.sanitizer.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}

func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addFeedHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
