package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedhawk/feedhawk/pkg/discovery"
	"github.com/feedhawk/feedhawk/pkg/domain"
	"github.com/feedhawk/feedhawk/pkg/feed"
	"github.com/feedhawk/feedhawk/pkg/scheduler"
	"github.com/feedhawk/feedhawk/pkg/service/mocks"
	"github.com/feedhawk/feedhawk/pkg/subscription"
)

func validFeed(title string) feed.Verdict {
	return feed.ValidFeed{Feed: &domain.ParsedFeed{FeedMeta: domain.FeedMeta{Title: title, Description: title + " news"}}}
}

func TestFeedService_Search(t *testing.T) {
	finder := &mocks.FinderMock{SearchFunc: func(ctx context.Context, query string) []domain.SearchResult {
		return []domain.SearchResult{{Title: "Go Blog", URL: "https://go.dev/blog/feed.atom"}}
	}}
	svc := NewFeedService(Params{Finder: finder})

	res := svc.Search(context.Background(), "golang")
	require.Len(t, res, 1)
	assert.Equal(t, "Go Blog", res[0].Title)
	require.Len(t, finder.SearchCalls(), 1)
	assert.Equal(t, "golang", finder.SearchCalls()[0].Query)
}

func TestFeedService_SearchValidated(t *testing.T) {
	finder := &mocks.FinderMock{SearchFunc: func(ctx context.Context, query string) []domain.SearchResult {
		return []domain.SearchResult{
			{Title: "first", URL: "https://a.example.com/rss"},
			{Title: "broken", URL: "https://b.example.com/rss"},
			{Title: "third", URL: "https://c.example.com/rss", Description: "kept"},
			{Title: "fourth", URL: "https://d.example.com/rss"},
		}
	}}
	validator := &mocks.ValidatorMock{ValidateFunc: func(ctx context.Context, url string) feed.Verdict {
		if url == "https://b.example.com/rss" {
			return feed.InvalidFeed{Reason: "failed to parse feed: unexpected status code: 404"}
		}
		return validFeed(url)
	}}
	svc := NewFeedService(Params{Finder: finder, Validator: validator, ValidateWorkers: 2})

	res := svc.SearchValidated(context.Background(), "tech")
	require.Len(t, res, 3)
	assert.Equal(t, "first", res[0].Title)
	assert.Equal(t, "https://a.example.com/rss news", res[0].Description, "filled from the feed")
	assert.Equal(t, "third", res[1].Title)
	assert.Equal(t, "kept", res[1].Description)
	assert.Equal(t, "fourth", res[2].Title)
	assert.Len(t, validator.ValidateCalls(), 4)
}

func TestFeedService_SearchValidatedTimeout(t *testing.T) {
	finder := &mocks.FinderMock{SearchFunc: func(ctx context.Context, query string) []domain.SearchResult {
		return []domain.SearchResult{
			{Title: "fast", URL: "https://fast.example.com/rss"},
			{Title: "hanging", URL: "https://slow.example.com/rss"},
		}
	}}
	validator := &mocks.ValidatorMock{ValidateFunc: func(ctx context.Context, url string) feed.Verdict {
		if url == "https://slow.example.com/rss" {
			<-ctx.Done()
			return feed.InvalidFeed{Reason: "failed to parse feed: " + ctx.Err().Error()}
		}
		return validFeed(url)
	}}
	svc := NewFeedService(Params{Finder: finder, Validator: validator, SearchTimeout: 50 * time.Millisecond})

	st := time.Now()
	res := svc.SearchValidated(context.Background(), "tech")
	assert.Less(t, time.Since(st), 5*time.Second)
	require.Len(t, res, 1)
	assert.Equal(t, "fast", res[0].Title)
}

func TestFeedService_Classify(t *testing.T) {
	finder := &mocks.FinderMock{ClassifyFunc: func(query string) discovery.QueryKind {
		return discovery.KindChannelHandle
	}}
	svc := NewFeedService(Params{Finder: finder})
	assert.Equal(t, discovery.KindChannelHandle, svc.Classify("vimeo staff picks"))
	require.Len(t, finder.ClassifyCalls(), 1)
	assert.Equal(t, "vimeo staff picks", finder.ClassifyCalls()[0].Query)
}

func TestFeedService_Validate(t *testing.T) {
	validator := &mocks.ValidatorMock{ValidateFunc: func(ctx context.Context, url string) feed.Verdict {
		return validFeed("Example")
	}}
	svc := NewFeedService(Params{Validator: validator})

	v := svc.Validate(context.Background(), " example.com/rss ")
	assert.IsType(t, feed.ValidFeed{}, v)
	assert.Equal(t, "https://example.com/rss", validator.ValidateCalls()[0].URL)

	v = svc.Validate(context.Background(), "  ")
	assert.Equal(t, feed.InvalidFeed{Reason: "empty url"}, v)
	assert.Len(t, validator.ValidateCalls(), 1, "no fetch for empty url")
}

func newSubscriptions() *mocks.SubscriptionsMock {
	return &mocks.SubscriptionsMock{
		EnsureDefaultListFunc: func(ctx context.Context, userID int64) (*domain.List, error) {
			return &domain.List{ID: 1, UserID: userID, Name: domain.DefaultListName, IsDefault: true}, nil
		},
		GetListFunc: func(ctx context.Context, listID int64) (*domain.List, error) {
			return &domain.List{ID: listID, UserID: 42, Name: "Tech"}, nil
		},
		FindOrCreateSourceFunc: func(ctx context.Context, rawURL string, meta domain.SourceMeta) (*domain.Source, error) {
			return &domain.Source{ID: 100, Name: meta.Name, URL: rawURL, Description: meta.Description, Category: meta.Category}, nil
		},
		SubscribeFunc: func(ctx context.Context, listID, sourceID int64) error { return nil },
	}
}

func TestFeedService_AddFeed(t *testing.T) {
	validator := &mocks.ValidatorMock{ValidateFunc: func(ctx context.Context, url string) feed.Verdict {
		return validFeed("Example")
	}}

	t.Run("default list", func(t *testing.T) {
		subs := newSubscriptions()
		svc := NewFeedService(Params{Validator: validator, Subscriptions: subs})
		src, err := svc.AddFeed(context.Background(), 42, 0, "example.com/rss", "")
		require.NoError(t, err)
		assert.Equal(t, int64(100), src.ID)
		assert.Equal(t, "Example", src.Name)
		assert.Equal(t, "https://example.com/rss", src.URL)
		assert.Equal(t, domain.CategoryGeneral, src.Category)

		require.Len(t, subs.EnsureDefaultListCalls(), 1)
		require.Len(t, subs.SubscribeCalls(), 1)
		assert.Equal(t, int64(1), subs.SubscribeCalls()[0].ListID)
		assert.Equal(t, int64(100), subs.SubscribeCalls()[0].SourceID)
	})

	t.Run("named list", func(t *testing.T) {
		subs := newSubscriptions()
		svc := NewFeedService(Params{Validator: validator, Subscriptions: subs})
		_, err := svc.AddFeed(context.Background(), 42, 7, "https://example.com/rss", "")
		require.NoError(t, err)
		assert.Empty(t, subs.EnsureDefaultListCalls())
		assert.Equal(t, int64(7), subs.SubscribeCalls()[0].ListID)
	})

	t.Run("category of the candidate", func(t *testing.T) {
		subs := newSubscriptions()
		svc := NewFeedService(Params{Validator: validator, Subscriptions: subs})
		src, err := svc.AddFeed(context.Background(), 42, 0, "https://www.youtube.com/feeds/videos.xml?user=gophers",
			domain.CategoryYouTube)
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryYouTube, src.Category)
		require.Len(t, subs.FindOrCreateSourceCalls(), 1)
		assert.Equal(t, domain.SourceMeta{Name: "Example", Description: "Example news", Category: domain.CategoryYouTube},
			subs.FindOrCreateSourceCalls()[0].Meta)
	})

	t.Run("list of another user", func(t *testing.T) {
		subs := newSubscriptions()
		svc := NewFeedService(Params{Validator: validator, Subscriptions: subs})
		_, err := svc.AddFeed(context.Background(), 43, 7, "https://example.com/rss", "")
		require.ErrorIs(t, err, ErrNotOwner)
		assert.Empty(t, subs.FindOrCreateSourceCalls())
	})

	t.Run("invalid feed", func(t *testing.T) {
		subs := newSubscriptions()
		invalid := &mocks.ValidatorMock{ValidateFunc: func(ctx context.Context, url string) feed.Verdict {
			return feed.InvalidFeed{Reason: "failed to parse feed: Failed to detect feed type"}
		}}
		svc := NewFeedService(Params{Validator: invalid, Subscriptions: subs})
		_, err := svc.AddFeed(context.Background(), 42, 0, "https://example.com", "")
		require.ErrorIs(t, err, ErrInvalidFeed)
		assert.Contains(t, err.Error(), "Failed to detect feed type")
		assert.Empty(t, subs.FindOrCreateSourceCalls())
		assert.Empty(t, subs.SubscribeCalls())
	})

	t.Run("anonymous and empty url", func(t *testing.T) {
		subs := newSubscriptions()
		validator := &mocks.ValidatorMock{}
		svc := NewFeedService(Params{Validator: validator, Subscriptions: subs})
		_, err := svc.AddFeed(context.Background(), 0, 0, "https://example.com/rss", "")
		require.ErrorIs(t, err, subscription.ErrAnonymous)
		_, err = svc.AddFeed(context.Background(), 42, 0, " ", "")
		require.ErrorIs(t, err, subscription.ErrEmptyURL)
		assert.Empty(t, validator.ValidateCalls())
	})

	t.Run("subscribe fails", func(t *testing.T) {
		subs := newSubscriptions()
		subs.SubscribeFunc = func(ctx context.Context, listID, sourceID int64) error { return errors.New("disk I/O error") }
		svc := NewFeedService(Params{Validator: validator, Subscriptions: subs})
		_, err := svc.AddFeed(context.Background(), 42, 0, "https://example.com/rss", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk I/O error")
	})
}

func TestFeedService_Refresh(t *testing.T) {
	subs := newSubscriptions()
	subs.SourcesForUserFunc = func(ctx context.Context, userID int64) ([]domain.Source, error) {
		return []domain.Source{{ID: 1, URL: "https://a.example.com/rss"}, {ID: 2, URL: "https://b.example.com/rss"}}, nil
	}
	refresher := &mocks.RefresherMock{RefreshFunc: func(ctx context.Context, sources []domain.Source) (scheduler.Stats, error) {
		return scheduler.Stats{Sources: len(sources), New: 3, Stored: 3}, nil
	}}
	svc := NewFeedService(Params{Subscriptions: subs, Refresher: refresher})

	stats, err := svc.Refresh(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, scheduler.Stats{Sources: 2, New: 3, Stored: 3}, stats)
	assert.Equal(t, int64(42), subs.SourcesForUserCalls()[0].UserID)
	assert.Len(t, refresher.RefreshCalls()[0].Sources, 2)

	_, err = svc.Refresh(context.Background(), 0)
	require.ErrorIs(t, err, subscription.ErrAnonymous)

	refresher.RefreshFunc = func(ctx context.Context, sources []domain.Source) (scheduler.Stats, error) {
		return scheduler.Stats{}, errors.New("store articles: locked")
	}
	_, err = svc.Refresh(context.Background(), 42)
	require.Error(t, err)
}

func TestFeedService_RecentArticles(t *testing.T) {
	reader := &mocks.ArticleReaderMock{RecentArticlesFunc: func(ctx context.Context, userID int64, limit int) ([]domain.Article, error) {
		return []domain.Article{{Title: "a"}}, nil
	}}
	svc := NewFeedService(Params{Articles: reader})

	tests := []struct {
		limit, want int
	}{{0, 100}, {-5, 100}, {20, 20}, {200, 200}, {500, 100}}
	for _, tt := range tests {
		_, err := svc.RecentArticles(context.Background(), 42, tt.limit)
		require.NoError(t, err)
		calls := reader.RecentArticlesCalls()
		assert.Equal(t, tt.want, calls[len(calls)-1].Limit, "limit %d", tt.limit)
	}

	_, err := svc.RecentArticles(context.Background(), 0, 10)
	require.ErrorIs(t, err, subscription.ErrAnonymous)
}
