package scheduler

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/feedhawk/feedhawk/pkg/content"
	"github.com/feedhawk/feedhawk/pkg/domain"
)

//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/source_store.go -pkg mocks -skip-ensure -fmt goimports . SourceStore
//go:generate moq -out mocks/source_tracker.go -pkg mocks -skip-ensure -fmt goimports . SourceTracker

// Parser fetches and parses a feed
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Extractor pulls the full text of an article page
type Extractor interface {
	Extract(ctx context.Context, url string) (*content.Result, error)
}

// ArticleStore persists ingested articles
type ArticleStore interface {
	ArticleExists(ctx context.Context, sourceID int64, url string) (bool, error)
	InsertArticles(ctx context.Context, articles []domain.Article) (int, error)
}

// SourceTracker records refresh failures and deactivates sources which keep failing
type SourceTracker interface {
	UpdateSourceError(ctx context.Context, id int64, errMsg string) (int, error)
	ResetSourceErrors(ctx context.Context, id int64) error
	SetSourceActive(ctx context.Context, id int64, active bool) error
}

// Stats summarizes a single refresh run
type Stats struct {
	Sources  int `json:"sources"`  // sources attempted
	Failed   int `json:"failed"`   // sources failed to fetch or parse
	Disabled int `json:"disabled"` // sources deactivated after repeated failures
	New      int `json:"new"`      // articles not seen before, before the cap
	Stored   int `json:"stored"`   // articles inserted
}

// FeedProcessor refreshes a set of sources: parses them in parallel, keeps unseen articles,
// caps the run total, optionally extracts full text and stores the result.
type FeedProcessor struct {
	parser         Parser
	extractor      Extractor
	articles       ArticleStore
	sources        SourceTracker
	maxWorkers     int
	maxArticles    int
	maxExtractions int
	maxErrors      int
}

// FeedProcessorConfig holds configuration for FeedProcessor
type FeedProcessorConfig struct {
	Parser         Parser
	Extractor      Extractor // optional, nil disables full-text extraction
	Articles       ArticleStore
	Sources        SourceTracker // optional, nil skips failure tracking
	MaxWorkers     int           // feeds parsed concurrently, default 5
	MaxArticles    int           // articles stored per run, default 50
	MaxExtractions int           // concurrent extractions, default 5
	MaxErrors      int           // consecutive failures before a source is deactivated, default 10
}

// NewFeedProcessor creates a feed processor
func NewFeedProcessor(cfg FeedProcessorConfig) *FeedProcessor {
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 5
	}
	if cfg.MaxArticles <= 0 {
		cfg.MaxArticles = 50
	}
	if cfg.MaxExtractions <= 0 {
		cfg.MaxExtractions = 5
	}
	if cfg.MaxErrors <= 0 {
		cfg.MaxErrors = 10
	}
	return &FeedProcessor{
		parser:         cfg.Parser,
		extractor:      cfg.Extractor,
		articles:       cfg.Articles,
		sources:        cfg.Sources,
		maxWorkers:     cfg.MaxWorkers,
		maxArticles:    cfg.MaxArticles,
		maxExtractions: cfg.MaxExtractions,
		maxErrors:      cfg.MaxErrors,
	}
}

// Refresh ingests new articles of the given sources. A source failing to parse is skipped,
// the returned error is set only when storing fails. Articles are taken in source order
// until the per-run cap is reached.
func (fp *FeedProcessor) Refresh(ctx context.Context, sources []domain.Source) (Stats, error) {
	stats := Stats{Sources: len(sources)}
	if len(sources) == 0 {
		return stats, nil
	}

	slots := make([][]domain.Article, len(sources))
	var failed, disabled atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fp.maxWorkers)
	for i, src := range sources {
		g.Go(func() error {
			articles, err := fp.fresh(gctx, src)
			if err != nil {
				failed.Add(1)
				lgr.Printf("[WARN] failed to refresh source %d %s: %v", src.ID, src.URL, err)
				if fp.failure(gctx, src, err) {
					disabled.Add(1)
				}
				return nil
			}
			fp.success(gctx, src)
			slots[i] = articles
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	stats.Failed = int(failed.Load())
	stats.Disabled = int(disabled.Load())
	var batch []domain.Article
	for _, slot := range slots {
		stats.New += len(slot)
		for _, a := range slot {
			if len(batch) == fp.maxArticles {
				break
			}
			batch = append(batch, a)
		}
	}
	if len(batch) == 0 {
		return stats, nil
	}

	if fp.extractor != nil {
		fp.extract(ctx, batch)
	}

	stored, err := fp.articles.InsertArticles(ctx, batch)
	if err != nil {
		return stats, fmt.Errorf("store articles: %w", err)
	}
	stats.Stored = stored
	lgr.Printf("[INFO] refreshed %d sources, %d failed, %d disabled, %d new articles, %d stored",
		stats.Sources, stats.Failed, stats.Disabled, stats.New, stats.Stored)
	return stats, nil
}

// failure records the error of the source and deactivates it once it failed maxErrors times
// in a row, reporting whether it was deactivated
func (fp *FeedProcessor) failure(ctx context.Context, src domain.Source, refreshErr error) bool {
	if fp.sources == nil {
		return false
	}
	count, err := fp.sources.UpdateSourceError(ctx, src.ID, refreshErr.Error())
	if err != nil {
		lgr.Printf("[WARN] failed to record error of source %d: %v", src.ID, err)
		return false
	}
	if count < fp.maxErrors {
		return false
	}
	if err := fp.sources.SetSourceActive(ctx, src.ID, false); err != nil {
		lgr.Printf("[WARN] failed to deactivate source %d: %v", src.ID, err)
		return false
	}
	lgr.Printf("[WARN] source %d %s deactivated after %d failures, last: %v", src.ID, src.URL, count, refreshErr)
	return true
}

// success clears the failure counter of a source which failed before
func (fp *FeedProcessor) success(ctx context.Context, src domain.Source) {
	if fp.sources == nil || src.ErrorCount == 0 {
		return
	}
	if err := fp.sources.ResetSourceErrors(ctx, src.ID); err != nil {
		lgr.Printf("[WARN] failed to reset errors of source %d: %v", src.ID, err)
	}
}

// fresh parses the source and returns the articles not stored yet
func (fp *FeedProcessor) fresh(ctx context.Context, src domain.Source) ([]domain.Article, error) {
	lgr.Printf("[DEBUG] refreshing source %d: %s", src.ID, src.URL)
	feed, err := fp.parser.Parse(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	res := make([]domain.Article, 0, len(feed.Articles))
	seen := make(map[string]bool, len(feed.Articles))
	for _, a := range feed.Articles {
		if a.URL == "" || seen[a.URL] {
			continue
		}
		seen[a.URL] = true
		exists, err := fp.articles.ArticleExists(ctx, src.ID, a.URL)
		if err != nil {
			return nil, fmt.Errorf("check article %s: %w", a.URL, err)
		}
		if exists {
			continue
		}
		a.SourceID = src.ID
		a.SourceName = src.Name
		res = append(res, a)
	}
	return res, nil
}

// extract replaces article content with the page text where extraction succeeds
func (fp *FeedProcessor) extract(ctx context.Context, articles []domain.Article) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fp.maxExtractions)
	for i := range articles {
		g.Go(func() error {
			res, err := fp.extractor.Extract(gctx, articles[i].URL)
			if err != nil {
				lgr.Printf("[DEBUG] no extraction for %s: %v", articles[i].URL, err)
				return nil
			}
			articles[i].Content = res.Text
			return nil
		})
	}
	_ = g.Wait()
}
