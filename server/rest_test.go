package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedhawk/feedhawk/pkg/discovery"
	"github.com/feedhawk/feedhawk/pkg/domain"
	"github.com/feedhawk/feedhawk/pkg/feed"
	"github.com/feedhawk/feedhawk/pkg/repository"
	"github.com/feedhawk/feedhawk/pkg/scheduler"
	"github.com/feedhawk/feedhawk/pkg/service"
	"github.com/feedhawk/feedhawk/pkg/subscription"
	"github.com/feedhawk/feedhawk/server/mocks"
)

func newTestServer(feeds *mocks.FeedServiceMock, lists *mocks.ListManagerMock) *Server {
	return New(Params{Config: &mocks.ConfigProviderMock{}, Feeds: feeds, Lists: lists, Version: "1.2.3"})
}

// call sends the request through the router, user zero sends no identity header
func call(t *testing.T, srv *Server, method, target string, userID int64, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID > 0 {
		req.Header.Set("X-User-Id", fmt.Sprint(userID))
	}
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var res T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func TestServer_statusHandler(t *testing.T) {
	t.Run("no health checker", func(t *testing.T) {
		srv := newTestServer(&mocks.FeedServiceMock{}, &mocks.ListManagerMock{})
		w := call(t, srv, http.MethodGet, "/api/v1/status", 0, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		status := decode[map[string]any](t, w)
		assert.Equal(t, "ok", status["status"])
		assert.Equal(t, "unknown", status["database"])
		assert.Equal(t, "1.2.3", status["version"])
		assert.NotEmpty(t, status["time"])
	})

	t.Run("database reachable", func(t *testing.T) {
		health := &mocks.HealthCheckerMock{PingFunc: func(ctx context.Context) error { return nil }}
		srv := New(Params{Config: &mocks.ConfigProviderMock{}, Feeds: &mocks.FeedServiceMock{},
			Lists: &mocks.ListManagerMock{}, Health: health, Version: "1.2.3"})
		w := call(t, srv, http.MethodGet, "/api/v1/status", 0, "")

		assert.Equal(t, http.StatusOK, w.Code)
		status := decode[map[string]any](t, w)
		assert.Equal(t, "ok", status["status"])
		assert.Equal(t, "ok", status["database"])
		assert.Len(t, health.PingCalls(), 1)
	})

	t.Run("database down", func(t *testing.T) {
		health := &mocks.HealthCheckerMock{PingFunc: func(ctx context.Context) error { return errors.New("database is closed") }}
		srv := New(Params{Config: &mocks.ConfigProviderMock{}, Feeds: &mocks.FeedServiceMock{},
			Lists: &mocks.ListManagerMock{}, Health: health, Version: "1.2.3"})
		w := call(t, srv, http.MethodGet, "/api/v1/status", 0, "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		status := decode[map[string]any](t, w)
		assert.Equal(t, "degraded", status["status"])
		assert.Equal(t, "unavailable", status["database"])
	})
}

func TestServer_searchHandler(t *testing.T) {
	results := []domain.SearchResult{{Title: "Go Blog", URL: "https://go.dev/blog/feed.atom",
		Category: domain.CategoryTech, Strategy: domain.StrategyHTMLLink}}
	feeds := &mocks.FeedServiceMock{
		ClassifyFunc: func(query string) discovery.QueryKind {
			if strings.HasPrefix(query, "@") {
				return discovery.KindChannelHandle
			}
			return discovery.KindDirectURL
		},
		SearchFunc:          func(ctx context.Context, query string) []domain.SearchResult { return results },
		SearchValidatedFunc: func(ctx context.Context, query string) []domain.SearchResult { return nil },
	}
	srv := newTestServer(feeds, &mocks.ListManagerMock{})

	w := call(t, srv, http.MethodGet, "/api/v1/search?q=go.dev", 0, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[struct {
		Query   string                `json:"query"`
		Kind    string                `json:"kind"`
		Results []domain.SearchResult `json:"results"`
	}](t, w)
	assert.Equal(t, "go.dev", resp.Query)
	assert.Equal(t, "direct-url", resp.Kind)
	assert.Equal(t, results, resp.Results)
	assert.Empty(t, feeds.SearchValidatedCalls())

	w = call(t, srv, http.MethodGet, "/api/v1/search?q=%40fireship&validate=true", 0, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"results":[]`)
	assert.Contains(t, w.Body.String(), `"kind":"channel-handle"`)
	require.Len(t, feeds.SearchValidatedCalls(), 1)
	assert.Equal(t, "@fireship", feeds.SearchValidatedCalls()[0].Query)
	require.Len(t, feeds.ClassifyCalls(), 2, "kind comes from the service classifier")
}

func TestServer_validateHandler(t *testing.T) {
	feeds := &mocks.FeedServiceMock{ValidateFunc: func(ctx context.Context, url string) feed.Verdict {
		if url == "https://example.com/rss" {
			return feed.ValidFeed{Feed: &domain.ParsedFeed{
				FeedMeta: domain.FeedMeta{Title: "Example", FeedURL: url},
				Articles: []domain.Article{{Title: "one"}, {Title: "two"}},
			}}
		}
		return feed.InvalidFeed{Reason: "failed to parse feed: unexpected status code: 404"}
	}}
	srv := newTestServer(feeds, &mocks.ListManagerMock{})

	w := call(t, srv, http.MethodGet, "/api/v1/validate?url=https://example.com/rss", 0, "")
	require.Equal(t, http.StatusOK, w.Code)
	valid := decode[struct {
		Valid bool         `json:"valid"`
		Feed  feedResponse `json:"feed"`
	}](t, w)
	assert.True(t, valid.Valid)
	assert.Equal(t, feedResponse{Title: "Example", FeedURL: "https://example.com/rss", Articles: 2}, valid.Feed)

	w = call(t, srv, http.MethodGet, "/api/v1/validate?url=https://example.com/missing", 0, "")
	require.Equal(t, http.StatusOK, w.Code)
	invalid := decode[map[string]any](t, w)
	assert.Equal(t, false, invalid["valid"])
	assert.Equal(t, "failed to parse feed: unexpected status code: 404", invalid["reason"])

	w = call(t, srv, http.MethodGet, "/api/v1/validate", 0, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, feeds.ValidateCalls(), 2)
}

func TestServer_listsHandlers(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	lists := &mocks.ListManagerMock{
		ListsForUserFunc: func(ctx context.Context, userID int64) ([]domain.List, error) {
			if userID == 0 {
				return nil, subscription.ErrAnonymous
			}
			return []domain.List{
				{ID: 1, UserID: userID, Name: "Home", IsDefault: true, SubscriptionCount: 3, CreatedAt: created},
				{ID: 2, UserID: userID, Name: "Tech", CreatedAt: created},
			}, nil
		},
		CreateListFunc: func(ctx context.Context, userID int64, name string) (*domain.List, error) {
			if strings.TrimSpace(name) == "" {
				return nil, subscription.ErrEmptyName
			}
			return &domain.List{ID: 5, UserID: userID, Name: name, CreatedAt: created}, nil
		},
	}
	srv := newTestServer(&mocks.FeedServiceMock{}, lists)

	w := call(t, srv, http.MethodGet, "/api/v1/lists", 42, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[[]listResponse](t, w)
	require.Len(t, got, 2)
	assert.Equal(t, listResponse{ID: 1, Name: "Home", IsDefault: true, SubscriptionCount: 3, CreatedAt: created}, got[0])
	assert.Equal(t, int64(42), lists.ListsForUserCalls()[0].UserID)

	w = call(t, srv, http.MethodGet, "/api/v1/lists", 0, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(t, srv, http.MethodPost, "/api/v1/lists", 42, `{"name":"Science"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Science", decode[listResponse](t, w).Name)

	w = call(t, srv, http.MethodPost, "/api/v1/lists", 42, `{"name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, srv, http.MethodPost, "/api/v1/lists", 42, `{bad json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, lists.CreateListCalls(), 2)
}

func TestServer_subscribeHandler(t *testing.T) {
	feeds := &mocks.FeedServiceMock{
		AddFeedFunc: func(ctx context.Context, userID, listID int64, url string, category domain.Category) (*domain.Source, error) {
			switch {
			case userID == 0:
				return nil, subscription.ErrAnonymous
			case listID == 99:
				return nil, fmt.Errorf("get list 99: %w", repository.ErrNotFound)
			case listID == 7:
				return nil, service.ErrNotOwner
			case url == "https://example.com/page":
				return nil, fmt.Errorf("%w: failed to parse feed: Failed to detect feed type", service.ErrInvalidFeed)
			case url == "https://example.com/locked":
				return nil, errors.New("database is locked")
			}
			return &domain.Source{ID: 10, Name: "Example", URL: url, Category: category}, nil
		},
	}
	srv := newTestServer(feeds, &mocks.ListManagerMock{})

	w := call(t, srv, http.MethodPost, "/api/v1/lists/3/subscriptions", 42, `{"url":"https://example.com/rss"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	src := decode[sourceResponse](t, w)
	assert.Equal(t, sourceResponse{ID: 10, Name: "Example", URL: "https://example.com/rss", Category: domain.CategoryGeneral}, src)
	last := feeds.AddFeedCalls()[len(feeds.AddFeedCalls())-1]
	assert.Equal(t, int64(42), last.UserID)
	assert.Equal(t, int64(3), last.ListID)

	w = call(t, srv, http.MethodPost, "/api/v1/subscriptions", 42, `{"url":"https://example.com/rss"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	last = feeds.AddFeedCalls()[len(feeds.AddFeedCalls())-1]
	assert.Equal(t, int64(0), last.ListID, "default list")

	w = call(t, srv, http.MethodPost, "/api/v1/subscriptions", 42, `{"url":"https://example.com/rss","category":"tech"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	last = feeds.AddFeedCalls()[len(feeds.AddFeedCalls())-1]
	assert.Equal(t, domain.CategoryTech, last.Category, "candidate category passed through")
	assert.Equal(t, domain.CategoryTech, decode[sourceResponse](t, w).Category)

	tests := []struct {
		name, target, body string
		userID             int64
		code               int
		errText            string
	}{
		{"anonymous", "/api/v1/subscriptions", `{"url":"https://example.com/rss"}`, 0, http.StatusUnauthorized, "authentication required"},
		{"missing list", "/api/v1/lists/99/subscriptions", `{"url":"https://example.com/rss"}`, 42, http.StatusNotFound, "not found"},
		{"foreign list", "/api/v1/lists/7/subscriptions", `{"url":"https://example.com/rss"}`, 42, http.StatusForbidden, "another user"},
		{"not a feed", "/api/v1/subscriptions", `{"url":"https://example.com/page"}`, 42, http.StatusUnprocessableEntity, "Failed to detect feed type"},
		{"store failure", "/api/v1/subscriptions", `{"url":"https://example.com/locked"}`, 42, http.StatusInternalServerError, "internal error"},
		{"bad list id", "/api/v1/lists/abc/subscriptions", `{"url":"https://example.com/rss"}`, 42, http.StatusBadRequest, "invalid list ID"},
		{"bad body", "/api/v1/subscriptions", `not json`, 42, http.StatusBadRequest, "invalid request"},
		{"unknown category", "/api/v1/subscriptions", `{"url":"https://example.com/rss","category":"cooking"}`, 42,
			http.StatusBadRequest, "unknown category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(t, srv, http.MethodPost, tt.target, tt.userID, tt.body)
			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, decode[map[string]string](t, w)["error"], tt.errText)
		})
	}
}

func TestServer_unsubscribeHandler(t *testing.T) {
	lists := &mocks.ListManagerMock{
		GetListFunc: func(ctx context.Context, listID int64) (*domain.List, error) {
			if listID == 99 {
				return nil, repository.ErrNotFound
			}
			return &domain.List{ID: listID, UserID: 42, Name: "Tech"}, nil
		},
		UnsubscribeFunc: func(ctx context.Context, listID, sourceID int64) (bool, error) {
			return sourceID == 10, nil
		},
	}
	srv := newTestServer(&mocks.FeedServiceMock{}, lists)

	w := call(t, srv, http.MethodDelete, "/api/v1/lists/3/subscriptions/10", 42, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]bool{"removed": true}, decode[map[string]bool](t, w))

	w = call(t, srv, http.MethodDelete, "/api/v1/lists/3/subscriptions/11", 42, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]bool{"removed": false}, decode[map[string]bool](t, w))

	assert.Equal(t, http.StatusForbidden, call(t, srv, http.MethodDelete, "/api/v1/lists/3/subscriptions/10", 43, "").Code)
	assert.Equal(t, http.StatusNotFound, call(t, srv, http.MethodDelete, "/api/v1/lists/99/subscriptions/10", 42, "").Code)
	assert.Equal(t, http.StatusUnauthorized, call(t, srv, http.MethodDelete, "/api/v1/lists/3/subscriptions/10", 0, "").Code)
	assert.Equal(t, http.StatusBadRequest, call(t, srv, http.MethodDelete, "/api/v1/lists/3/subscriptions/x", 42, "").Code)
	assert.Len(t, lists.UnsubscribeCalls(), 2)
}

func TestServer_refreshHandler(t *testing.T) {
	feeds := &mocks.FeedServiceMock{RefreshFunc: func(ctx context.Context, userID int64) (scheduler.Stats, error) {
		if userID == 0 {
			return scheduler.Stats{}, subscription.ErrAnonymous
		}
		return scheduler.Stats{Sources: 2, Failed: 1, New: 5, Stored: 5}, nil
	}}
	srv := newTestServer(feeds, &mocks.ListManagerMock{})

	w := call(t, srv, http.MethodPost, "/api/v1/refresh", 42, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, scheduler.Stats{Sources: 2, Failed: 1, New: 5, Stored: 5}, decode[scheduler.Stats](t, w))

	assert.Equal(t, http.StatusUnauthorized, call(t, srv, http.MethodPost, "/api/v1/refresh", 0, "").Code)
}

func TestServer_articlesHandler(t *testing.T) {
	published := time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC)
	feeds := &mocks.FeedServiceMock{RecentArticlesFunc: func(ctx context.Context, userID int64, limit int) ([]domain.Article, error) {
		return []domain.Article{{ID: 1, SourceID: 2, SourceName: "Go Blog", Title: "Go 1.26", URL: "https://go.dev/blog/go1.26",
			Content: "not exposed", Published: published}}, nil
	}}
	srv := newTestServer(feeds, &mocks.ListManagerMock{})

	w := call(t, srv, http.MethodGet, "/api/v1/articles?limit=20", 42, "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[[]articleResponse](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, articleResponse{ID: 1, SourceID: 2, SourceName: "Go Blog", Title: "Go 1.26",
		URL: "https://go.dev/blog/go1.26", Published: published}, got[0])
	assert.NotContains(t, w.Body.String(), "not exposed")
	assert.Equal(t, 20, feeds.RecentArticlesCalls()[0].Limit)

	call(t, srv, http.MethodGet, "/api/v1/articles", 42, "")
	assert.Equal(t, 0, feeds.RecentArticlesCalls()[1].Limit, "service applies the default")
}
