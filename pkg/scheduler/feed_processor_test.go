package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedhawk/feedhawk/pkg/content"
	"github.com/feedhawk/feedhawk/pkg/domain"
	"github.com/feedhawk/feedhawk/pkg/scheduler/mocks"
)

func feedWith(prefix string, n int) *domain.ParsedFeed {
	res := &domain.ParsedFeed{FeedMeta: domain.FeedMeta{Title: prefix}}
	for i := range n {
		res.Articles = append(res.Articles, domain.Article{
			GUID:      fmt.Sprintf("%s-%d", prefix, i),
			Title:     fmt.Sprintf("%s article %d", prefix, i),
			URL:       fmt.Sprintf("https://%s.example.com/%d", prefix, i),
			Content:   "teaser",
			Published: time.Date(2026, 3, 1, 0, i, 0, 0, time.UTC),
		})
	}
	return res
}

func storeMock(existing map[string]bool) *mocks.ArticleStoreMock {
	var mu sync.Mutex
	return &mocks.ArticleStoreMock{
		ArticleExistsFunc: func(ctx context.Context, sourceID int64, url string) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			return existing[url], nil
		},
		InsertArticlesFunc: func(ctx context.Context, articles []domain.Article) (int, error) {
			return len(articles), nil
		},
	}
}

func TestFeedProcessor_Refresh(t *testing.T) {
	parser := &mocks.ParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) {
			switch url {
			case "https://a.example.com/rss":
				return feedWith("a", 3), nil
			case "https://b.example.com/rss":
				return feedWith("b", 2), nil
			}
			return nil, errors.New("unexpected status code: 404")
		},
	}
	store := storeMock(map[string]bool{"https://a.example.com/0": true})

	fp := NewFeedProcessor(FeedProcessorConfig{Parser: parser, Articles: store, MaxWorkers: 2})
	sources := []domain.Source{
		{ID: 1, Name: "A", URL: "https://a.example.com/rss"},
		{ID: 2, Name: "Broken", URL: "https://broken.example.com/rss"},
		{ID: 3, Name: "B", URL: "https://b.example.com/rss"},
	}
	stats, err := fp.Refresh(context.Background(), sources)
	require.NoError(t, err)
	assert.Equal(t, Stats{Sources: 3, Failed: 1, New: 4, Stored: 4}, stats)

	assert.Len(t, parser.ParseCalls(), 3)
	require.Len(t, store.InsertArticlesCalls(), 1)
	stored := store.InsertArticlesCalls()[0].Articles
	require.Len(t, stored, 4)
	assert.Equal(t, "https://a.example.com/1", stored[0].URL, "known article skipped, source order kept")
	assert.Equal(t, int64(1), stored[0].SourceID)
	assert.Equal(t, "A", stored[0].SourceName)
	assert.Equal(t, "https://b.example.com/0", stored[2].URL)
	assert.Equal(t, int64(3), stored[2].SourceID)
}

func TestFeedProcessor_RefreshCapped(t *testing.T) {
	parser := &mocks.ParserMock{
		ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) {
			if url == "https://a.example.com/rss" {
				return feedWith("a", 40), nil
			}
			return feedWith("b", 40), nil
		},
	}
	store := storeMock(nil)

	fp := NewFeedProcessor(FeedProcessorConfig{Parser: parser, Articles: store})
	stats, err := fp.Refresh(context.Background(), []domain.Source{
		{ID: 1, URL: "https://a.example.com/rss"}, {ID: 2, URL: "https://b.example.com/rss"},
	})
	require.NoError(t, err)
	assert.Equal(t, 80, stats.New)
	assert.Equal(t, 50, stats.Stored)

	stored := store.InsertArticlesCalls()[0].Articles
	require.Len(t, stored, 50)
	assert.Equal(t, int64(1), stored[39].SourceID)
	assert.Equal(t, int64(2), stored[40].SourceID)
	assert.Equal(t, "https://b.example.com/9", stored[49].URL)
}

func TestFeedProcessor_RefreshDuplicateURLsInFeed(t *testing.T) {
	feed := feedWith("a", 2)
	feed.Articles = append(feed.Articles, feed.Articles[0], domain.Article{Title: "no link"})
	parser := &mocks.ParserMock{ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) {
		return feed, nil
	}}
	store := storeMock(nil)

	stats, err := NewFeedProcessor(FeedProcessorConfig{Parser: parser, Articles: store}).
		Refresh(context.Background(), []domain.Source{{ID: 1, URL: "https://a.example.com/rss"}})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Stored)
	assert.Len(t, store.ArticleExistsCalls(), 2)
}

func TestFeedProcessor_RefreshNothingNew(t *testing.T) {
	parser := &mocks.ParserMock{ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) {
		return feedWith("a", 2), nil
	}}
	store := storeMock(map[string]bool{"https://a.example.com/0": true, "https://a.example.com/1": true})

	fp := NewFeedProcessor(FeedProcessorConfig{Parser: parser, Articles: store})
	stats, err := fp.Refresh(context.Background(), []domain.Source{{ID: 1, URL: "https://a.example.com/rss"}})
	require.NoError(t, err)
	assert.Equal(t, Stats{Sources: 1}, stats)
	assert.Empty(t, store.InsertArticlesCalls())

	stats, err = fp.Refresh(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
	assert.Len(t, parser.ParseCalls(), 1)
}

func TestFeedProcessor_RefreshStoreErrors(t *testing.T) {
	parser := &mocks.ParserMock{ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) {
		return feedWith("a", 2), nil
	}}

	t.Run("exists check fails the source", func(t *testing.T) {
		store := &mocks.ArticleStoreMock{
			ArticleExistsFunc: func(ctx context.Context, sourceID int64, url string) (bool, error) {
				return false, errors.New("db is locked")
			},
		}
		stats, err := NewFeedProcessor(FeedProcessorConfig{Parser: parser, Articles: store}).
			Refresh(context.Background(), []domain.Source{{ID: 1, URL: "https://a.example.com/rss"}})
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Failed)
	})

	t.Run("insert fails the run", func(t *testing.T) {
		store := storeMock(nil)
		store.InsertArticlesFunc = func(ctx context.Context, articles []domain.Article) (int, error) {
			return 0, errors.New("disk full")
		}
		_, err := NewFeedProcessor(FeedProcessorConfig{Parser: parser, Articles: store}).
			Refresh(context.Background(), []domain.Source{{ID: 1, URL: "https://a.example.com/rss"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestFeedProcessor_RefreshTracksFailures(t *testing.T) {
	parser := &mocks.ParserMock{ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) {
		if url == "https://a.example.com/rss" {
			return feedWith("a", 1), nil
		}
		return nil, errors.New("unexpected status code: 500")
	}}
	var mu sync.Mutex
	errorCounts := map[int64]int{2: 2, 3: 0}
	tracker := &mocks.SourceTrackerMock{
		UpdateSourceErrorFunc: func(ctx context.Context, id int64, errMsg string) (int, error) {
			mu.Lock()
			defer mu.Unlock()
			errorCounts[id]++
			return errorCounts[id], nil
		},
		ResetSourceErrorsFunc: func(ctx context.Context, id int64) error { return nil },
		SetSourceActiveFunc:   func(ctx context.Context, id int64, active bool) error { return nil },
	}

	fp := NewFeedProcessor(FeedProcessorConfig{Parser: parser, Articles: storeMock(nil), Sources: tracker, MaxErrors: 3})
	stats, err := fp.Refresh(context.Background(), []domain.Source{
		{ID: 1, URL: "https://a.example.com/rss", ErrorCount: 4},
		{ID: 2, URL: "https://dying.example.com/rss", ErrorCount: 2},
		{ID: 3, URL: "https://flaky.example.com/rss"},
	})
	require.NoError(t, err)
	assert.Equal(t, Stats{Sources: 3, Failed: 2, Disabled: 1, New: 1, Stored: 1}, stats)

	require.Len(t, tracker.UpdateSourceErrorCalls(), 2)
	for _, c := range tracker.UpdateSourceErrorCalls() {
		assert.Equal(t, "parse: unexpected status code: 500", c.ErrMsg)
	}
	require.Len(t, tracker.SetSourceActiveCalls(), 1, "only the source reaching the limit is deactivated")
	assert.Equal(t, int64(2), tracker.SetSourceActiveCalls()[0].ID)
	assert.False(t, tracker.SetSourceActiveCalls()[0].Active)
	require.Len(t, tracker.ResetSourceErrorsCalls(), 1, "recovered source gets its counter cleared")
	assert.Equal(t, int64(1), tracker.ResetSourceErrorsCalls()[0].ID)

	t.Run("tracker errors don't fail the run", func(t *testing.T) {
		broken := &mocks.SourceTrackerMock{
			UpdateSourceErrorFunc: func(ctx context.Context, id int64, errMsg string) (int, error) {
				return 0, errors.New("db is locked")
			},
			ResetSourceErrorsFunc: func(ctx context.Context, id int64) error { return errors.New("db is locked") },
		}
		fp := NewFeedProcessor(FeedProcessorConfig{Parser: parser, Articles: storeMock(nil), Sources: broken})
		stats, err := fp.Refresh(context.Background(), []domain.Source{
			{ID: 1, URL: "https://a.example.com/rss", ErrorCount: 1},
			{ID: 2, URL: "https://dying.example.com/rss"},
		})
		require.NoError(t, err)
		assert.Equal(t, Stats{Sources: 2, Failed: 1, New: 1, Stored: 1}, stats)
	})
}

func TestFeedProcessor_RefreshWithExtraction(t *testing.T) {
	parser := &mocks.ParserMock{ParseFunc: func(ctx context.Context, url string) (*domain.ParsedFeed, error) {
		return feedWith("a", 3), nil
	}}
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, url string) (*content.Result, error) {
			if url == "https://a.example.com/1" {
				return nil, errors.New("extracted text too short")
			}
			return &content.Result{Text: "full text of " + url}, nil
		},
	}
	store := storeMock(nil)

	fp := NewFeedProcessor(FeedProcessorConfig{Parser: parser, Extractor: extractor, Articles: store, MaxExtractions: 2})
	_, err := fp.Refresh(context.Background(), []domain.Source{{ID: 1, URL: "https://a.example.com/rss"}})
	require.NoError(t, err)

	assert.Len(t, extractor.ExtractCalls(), 3)
	stored := store.InsertArticlesCalls()[0].Articles
	assert.Equal(t, "full text of https://a.example.com/0", stored[0].Content)
	assert.Equal(t, "teaser", stored[1].Content, "failed extraction keeps feed content")
	assert.Equal(t, "full text of https://a.example.com/2", stored[2].Content)
}

func TestNewFeedProcessor_Defaults(t *testing.T) {
	fp := NewFeedProcessor(FeedProcessorConfig{})
	assert.Equal(t, 5, fp.maxWorkers)
	assert.Equal(t, 50, fp.maxArticles)
	assert.Equal(t, 5, fp.maxExtractions)
	assert.Equal(t, 10, fp.maxErrors)
	assert.Nil(t, fp.extractor)
	assert.Nil(t, fp.sources)
}
