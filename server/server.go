package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/feedhawk/feedhawk/pkg/discovery"
	"github.com/feedhawk/feedhawk/pkg/domain"
	"github.com/feedhawk/feedhawk/pkg/feed"
	"github.com/feedhawk/feedhawk/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feeds.go -pkg mocks -skip-ensure -fmt goimports . FeedService
//go:generate moq -out mocks/lists.go -pkg mocks -skip-ensure -fmt goimports . ListManager
//go:generate moq -out mocks/health.go -pkg mocks -skip-ensure -fmt goimports . HealthChecker

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	feeds    FeedService
	lists    ListManager
	health   HealthChecker
	identity Identity
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// FeedService is the feed discovery and ingestion surface
type FeedService interface {
	Classify(query string) discovery.QueryKind
	Search(ctx context.Context, query string) []domain.SearchResult
	SearchValidated(ctx context.Context, query string) []domain.SearchResult
	Validate(ctx context.Context, url string) feed.Verdict
	AddFeed(ctx context.Context, userID, listID int64, url string, category domain.Category) (*domain.Source, error)
	Refresh(ctx context.Context, userID int64) (scheduler.Stats, error)
	RecentArticles(ctx context.Context, userID int64, limit int) ([]domain.Article, error)
}

// ListManager is the list bookkeeping surface
type ListManager interface {
	ListsForUser(ctx context.Context, userID int64) ([]domain.List, error)
	CreateList(ctx context.Context, userID int64, name string) (*domain.List, error)
	GetList(ctx context.Context, listID int64) (*domain.List, error)
	Unsubscribe(ctx context.Context, listID, sourceID int64) (bool, error)
}

// HealthChecker reports whether the storage is reachable
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Params holds server dependencies
type Params struct {
	Config   ConfigProvider
	Feeds    FeedService
	Lists    ListManager
	Health   HealthChecker // optional, reported by the status endpoint
	Identity Identity      // defaults to HeaderIdentity
	Version  string
	Debug    bool
}

// New initializes a new server instance
func New(p Params) *Server {
	if p.Identity == nil {
		p.Identity = HeaderIdentity{}
	}
	s := &Server{
		config:   p.Config,
		feeds:    p.Feeds,
		lists:    p.Lists,
		health:   p.Health,
		identity: p.Identity,
		version:  p.Version,
		debug:    p.Debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		// validated search is bounded by timeout in the service, the rest is left for the response
		WriteTimeout: 2 * timeout,
		IdleTimeout:  timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedhawk", "feedhawk", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /search", s.searchHandler)
		r.HandleFunc("GET /validate", s.validateHandler)

		r.HandleFunc("GET /lists", s.listsHandler)
		r.HandleFunc("POST /lists", s.createListHandler)
		r.HandleFunc("POST /lists/{id}/subscriptions", s.subscribeHandler)
		r.HandleFunc("DELETE /lists/{id}/subscriptions/{source}", s.unsubscribeHandler)
		r.HandleFunc("POST /subscriptions", s.subscribeHandler)

		r.HandleFunc("POST /refresh", s.refreshHandler)
		r.HandleFunc("GET /articles", s.articlesHandler)
	})
}
