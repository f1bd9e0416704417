// Package content pulls the readable text of an article page.
// Feeds often carry only a teaser, the extractor replaces it with the page body.
package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"

	"github.com/feedhawk/feedhawk/pkg/domain"
)

const maxPageSize = 5 * 1024 * 1024

// Config defines extractor parameters
type Config struct {
	Timeout       time.Duration // per page, default 30s
	UserAgent     string
	MinTextLength int // shorter text is rejected, default 100
}

// Result is the extracted article body
type Result struct {
	Title string
	Text  string
}

// HTTPExtractor extracts article content from pages using trafilatura
type HTTPExtractor struct {
	client    *http.Client
	userAgent string
	minLength int
}

// NewHTTPExtractor creates a new content extractor
func NewHTTPExtractor(cfg Config) *HTTPExtractor {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = domain.DefaultUserAgent
	}
	if cfg.MinTextLength == 0 {
		cfg.MinTextLength = 100
	}
	return &HTTPExtractor{
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		minLength: cfg.MinTextLength,
	}
}

// Extract fetches the page and returns its main text
func (e *HTTPExtractor) Extract(ctx context.Context, pageURL string) (*Result, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %q", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	addPageHeaders(req)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, pageURL)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}
	extracted, err := trafilatura.Extract(io.LimitReader(resp.Body, maxPageSize), opts)
	if err != nil {
		return nil, fmt.Errorf("extract content from %s: %w", pageURL, err)
	}
	if extracted == nil {
		return nil, fmt.Errorf("no content extracted from %s", pageURL)
	}

	text := strings.TrimSpace(extracted.ContentText)
	if len([]rune(text)) < e.minLength {
		return nil, fmt.Errorf("extracted text too short (%d chars) from %s", len([]rune(text)), pageURL)
	}
	return &Result{Title: strings.TrimSpace(extracted.Metadata.Title), Text: text}, nil
}
