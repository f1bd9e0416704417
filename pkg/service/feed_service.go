// Package service ties discovery, parsing and subscription bookkeeping into the user-facing
// operations: search, validate, add a feed to a list, refresh and read articles.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/feedhawk/feedhawk/pkg/discovery"
	"github.com/feedhawk/feedhawk/pkg/domain"
	"github.com/feedhawk/feedhawk/pkg/feed"
	"github.com/feedhawk/feedhawk/pkg/scheduler"
	"github.com/feedhawk/feedhawk/pkg/subscription"
)

//go:generate moq -out mocks/finder.go -pkg mocks -skip-ensure -fmt goimports . Finder
//go:generate moq -out mocks/validator.go -pkg mocks -skip-ensure -fmt goimports . Validator
//go:generate moq -out mocks/subscriptions.go -pkg mocks -skip-ensure -fmt goimports . Subscriptions
//go:generate moq -out mocks/article_reader.go -pkg mocks -skip-ensure -fmt goimports . ArticleReader
//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher

const (
	defaultArticlesLimit = 100
	maxArticlesLimit     = 200
)

// errors returned by the service
var (
	ErrInvalidFeed = errors.New("invalid feed")
	ErrNotOwner    = errors.New("list belongs to another user")
)

// Finder discovers candidate feeds
type Finder interface {
	Classify(query string) discovery.QueryKind
	Search(ctx context.Context, query string) []domain.SearchResult
}

// Validator confirms a url serves a feed
type Validator interface {
	Validate(ctx context.Context, url string) feed.Verdict
}

// Subscriptions is the part of subscription.Manager used by the service
type Subscriptions interface {
	EnsureDefaultList(ctx context.Context, userID int64) (*domain.List, error)
	GetList(ctx context.Context, listID int64) (*domain.List, error)
	FindOrCreateSource(ctx context.Context, rawURL string, meta domain.SourceMeta) (*domain.Source, error)
	Subscribe(ctx context.Context, listID, sourceID int64) error
	SourcesForUser(ctx context.Context, userID int64) ([]domain.Source, error)
}

// ArticleReader reads stored articles
type ArticleReader interface {
	RecentArticles(ctx context.Context, userID int64, limit int) ([]domain.Article, error)
}

// Refresher ingests articles of the given sources
type Refresher interface {
	Refresh(ctx context.Context, sources []domain.Source) (scheduler.Stats, error)
}

// Params holds FeedService dependencies
type Params struct {
	Finder          Finder
	Validator       Validator
	Subscriptions   Subscriptions
	Articles        ArticleReader
	Refresher       Refresher
	ValidateWorkers int           // concurrent validations in SearchValidated, default 8
	SearchTimeout   time.Duration // deadline of the whole SearchValidated run, zero means none
}

// FeedService implements the feed operations exposed to users
type FeedService struct {
	finder          Finder
	validator       Validator
	subs            Subscriptions
	articles        ArticleReader
	refresher       Refresher
	validateWorkers int
	searchTimeout   time.Duration
}

// NewFeedService makes a service with the given dependencies
func NewFeedService(p Params) *FeedService {
	if p.ValidateWorkers <= 0 {
		p.ValidateWorkers = 8
	}
	return &FeedService{
		finder:          p.Finder,
		validator:       p.Validator,
		subs:            p.Subscriptions,
		articles:        p.Articles,
		refresher:       p.Refresher,
		validateWorkers: p.ValidateWorkers,
		searchTimeout:   p.SearchTimeout,
	}
}

// Classify reports how the query is interpreted by discovery
func (s *FeedService) Classify(query string) discovery.QueryKind {
	return s.finder.Classify(query)
}

// Search returns ranked feed candidates for the query, blank query gives the popular feeds
func (s *FeedService) Search(ctx context.Context, query string) []domain.SearchResult {
	return s.finder.Search(ctx, query)
}

// SearchValidated returns only the candidates that parse as feeds, keeping the rank order.
// An empty description is filled from the feed itself. Candidates not confirmed before the
// search timeout are dropped.
func (s *FeedService) SearchValidated(ctx context.Context, query string) []domain.SearchResult {
	if s.searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.searchTimeout)
		defer cancel()
	}
	candidates := s.finder.Search(ctx, query)
	valid := make([]*domain.SearchResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.validateWorkers)
	for i, c := range candidates {
		g.Go(func() error {
			v, ok := s.validator.Validate(gctx, c.URL).(feed.ValidFeed)
			if !ok {
				return nil
			}
			if c.Description == "" && v.Feed != nil {
				c.Description = v.Feed.Description
			}
			valid[i] = &c
			return nil
		})
	}
	_ = g.Wait()

	res := make([]domain.SearchResult, 0, len(candidates))
	for _, v := range valid {
		if v != nil {
			res = append(res, *v)
		}
	}
	lgr.Printf("[DEBUG] search %q, %d of %d candidates valid", query, len(res), len(candidates))
	return res
}

// Validate checks the url serves a feed. A missing scheme is taken as https.
func (s *FeedService) Validate(ctx context.Context, rawURL string) feed.Verdict {
	u := discovery.NormalizeURL(rawURL)
	if u == "" {
		return feed.InvalidFeed{Reason: "empty url"}
	}
	return s.validator.Validate(ctx, u)
}

// AddFeed validates the url, registers the source and subscribes it to the list.
// Zero listID means the user's default list. The category, usually the one of the discovery
// candidate, applies to a newly created source, empty means General. The returned error
// carries the parse failure reason when the url is not a feed.
func (s *FeedService) AddFeed(ctx context.Context, userID, listID int64, rawURL string, category domain.Category) (*domain.Source, error) {
	if userID <= 0 {
		return nil, subscription.ErrAnonymous
	}
	if strings.TrimSpace(rawURL) == "" {
		return nil, subscription.ErrEmptyURL
	}

	list, err := s.targetList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	var parsed *domain.ParsedFeed
	switch v := s.Validate(ctx, rawURL).(type) {
	case feed.ValidFeed:
		parsed = v.Feed
	case feed.InvalidFeed:
		return nil, fmt.Errorf("%w: %s", ErrInvalidFeed, v.Reason)
	}

	if category == "" {
		category = domain.CategoryGeneral
	}
	meta := domain.SourceMeta{Category: category}
	if parsed != nil {
		meta.Name, meta.Description = parsed.Title, parsed.Description
	}
	src, err := s.subs.FindOrCreateSource(ctx, discovery.NormalizeURL(rawURL), meta)
	if err != nil {
		return nil, fmt.Errorf("add feed %s: %w", rawURL, err)
	}
	if err := s.subs.Subscribe(ctx, list.ID, src.ID); err != nil {
		return nil, fmt.Errorf("add feed %s: %w", rawURL, err)
	}
	lgr.Printf("[INFO] user %d added source %d %q to list %d", userID, src.ID, src.Name, list.ID)
	return src, nil
}

// Refresh ingests new articles of every source the user follows
func (s *FeedService) Refresh(ctx context.Context, userID int64) (scheduler.Stats, error) {
	if userID <= 0 {
		return scheduler.Stats{}, subscription.ErrAnonymous
	}
	sources, err := s.subs.SourcesForUser(ctx, userID)
	if err != nil {
		return scheduler.Stats{}, fmt.Errorf("refresh for user %d: %w", userID, err)
	}
	stats, err := s.refresher.Refresh(ctx, sources)
	if err != nil {
		return stats, fmt.Errorf("refresh for user %d: %w", userID, err)
	}
	return stats, nil
}

// RecentArticles returns the newest articles of the user's sources.
// Limit outside 1..200 falls back to 100.
func (s *FeedService) RecentArticles(ctx context.Context, userID int64, limit int) ([]domain.Article, error) {
	if userID <= 0 {
		return nil, subscription.ErrAnonymous
	}
	if limit <= 0 || limit > maxArticlesLimit {
		limit = defaultArticlesLimit
	}
	return s.articles.RecentArticles(ctx, userID, limit)
}

// targetList resolves the list a feed goes to and checks the user owns it
func (s *FeedService) targetList(ctx context.Context, userID, listID int64) (*domain.List, error) {
	if listID == 0 {
		return s.subs.EnsureDefaultList(ctx, userID)
	}
	list, err := s.subs.GetList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("get list %d: %w", listID, err)
	}
	if list.UserID != userID {
		return nil, ErrNotOwner
	}
	return list, nil
}
