package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/feedhawk/feedhawk/pkg/domain"
	"github.com/feedhawk/feedhawk/pkg/feed"
	"github.com/feedhawk/feedhawk/pkg/repository"
	"github.com/feedhawk/feedhawk/pkg/service"
	"github.com/feedhawk/feedhawk/pkg/subscription"
)

type listResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	IsDefault         bool      `json:"is_default"`
	SubscriptionCount int       `json:"subscription_count"`
	CreatedAt         time.Time `json:"created_at"`
}

type sourceResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	URL         string          `json:"url"`
	Description string          `json:"description,omitempty"`
	Category    domain.Category `json:"category"`
}

type articleResponse struct {
	ID          int64     `json:"id"`
	SourceID    int64     `json:"source_id"`
	SourceName  string    `json:"source_name"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Author      string    `json:"author,omitempty"`
	Published   time.Time `json:"published"`
}

type feedResponse struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	SiteLink    string `json:"site_link,omitempty"`
	FeedURL     string `json:"feed_url"`
	Articles    int    `json:"articles"`
}

// statusHandler returns server status, 503 when the database doesn't answer
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status, code, db := "ok", http.StatusOK, "ok"
	if s.health == nil {
		db = "unknown"
	} else if err := s.health.Ping(r.Context()); err != nil {
		lgr.Printf("[WARN] database ping failed: %v", err)
		status, code, db = "degraded", http.StatusServiceUnavailable, "unavailable"
	}
	renderJSON(w, r, code, rest.JSON{
		"status":   status,
		"database": db,
		"version":  s.version,
		"time":     time.Now().UTC(),
	})
}

// searchHandler runs feed discovery, validate=true keeps only candidates parsing as feeds
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	validate, _ := strconv.ParseBool(r.URL.Query().Get("validate"))

	var results []domain.SearchResult
	if validate {
		results = s.feeds.SearchValidated(r.Context(), query)
	} else {
		results = s.feeds.Search(r.Context(), query)
	}
	if results == nil {
		results = []domain.SearchResult{}
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{
		"query":   query,
		"kind":    s.feeds.Classify(query).String(),
		"results": results,
	})
}

// validateHandler reports whether the url serves a feed
func (s *Server) validateHandler(w http.ResponseWriter, r *http.Request) {
	u := r.URL.Query().Get("url")
	if strings.TrimSpace(u) == "" {
		renderError(w, r, errors.New("url parameter is required"), http.StatusBadRequest)
		return
	}

	switch v := s.feeds.Validate(r.Context(), u).(type) {
	case feed.ValidFeed:
		renderJSON(w, r, http.StatusOK, rest.JSON{"valid": true, "feed": feedResponse{
			Title: v.Feed.Title, Description: v.Feed.Description, SiteLink: v.Feed.SiteLink,
			FeedURL: v.Feed.FeedURL, Articles: len(v.Feed.Articles),
		}})
	case feed.InvalidFeed:
		renderJSON(w, r, http.StatusOK, rest.JSON{"valid": false, "reason": v.Reason})
	}
}

// listsHandler returns the user's lists, default first
func (s *Server) listsHandler(w http.ResponseWriter, r *http.Request) {
	lists, err := s.lists.ListsForUser(r.Context(), s.identity.UserID(r))
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	res := make([]listResponse, 0, len(lists))
	for i := range lists {
		res = append(res, toListResponse(&lists[i]))
	}
	renderJSON(w, r, http.StatusOK, res)
}

// createListHandler creates a named list, an existing name returns that list
func (s *Server) createListHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}

	list, err := s.lists.CreateList(r.Context(), s.identity.UserID(r), req.Name)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, toListResponse(list))
}

// subscribeHandler validates the feed and adds it to the list from the path or the body,
// no list means the default one
func (s *Server) subscribeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL      string `json:"url"`
		ListID   int64  `json:"list_id"`
		Category string `json:"category"` // optional, category of the discovery candidate
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request: %w", err), http.StatusBadRequest)
		return
	}
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if idStr := r.PathValue("id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			renderError(w, r, errors.New("invalid list ID"), http.StatusBadRequest)
			return
		}
		req.ListID = id
	}

	src, err := s.feeds.AddFeed(r.Context(), s.identity.UserID(r), req.ListID, req.URL, category)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, sourceResponse{ID: src.ID, Name: src.Name, URL: src.URL,
		Description: src.Description, Category: src.Category})
}

// unsubscribeHandler removes the source from the user's list
func (s *Server) unsubscribeHandler(w http.ResponseWriter, r *http.Request) {
	userID := s.identity.UserID(r)
	if userID <= 0 {
		s.renderFailure(w, r, subscription.ErrAnonymous)
		return
	}
	listID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, errors.New("invalid list ID"), http.StatusBadRequest)
		return
	}
	sourceID, err := strconv.ParseInt(r.PathValue("source"), 10, 64)
	if err != nil {
		renderError(w, r, errors.New("invalid source ID"), http.StatusBadRequest)
		return
	}

	list, err := s.lists.GetList(r.Context(), listID)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	if list.UserID != userID {
		s.renderFailure(w, r, service.ErrNotOwner)
		return
	}

	removed, err := s.lists.Unsubscribe(r.Context(), listID, sourceID)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, rest.JSON{"removed": removed})
}

// refreshHandler ingests new articles of the user's sources
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.feeds.Refresh(r.Context(), s.identity.UserID(r))
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// articlesHandler returns the newest articles of the user's sources
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	articles, err := s.feeds.RecentArticles(r.Context(), s.identity.UserID(r), limit)
	if err != nil {
		s.renderFailure(w, r, err)
		return
	}
	res := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		res = append(res, articleResponse{ID: a.ID, SourceID: a.SourceID, SourceName: a.SourceName, Title: a.Title,
			URL: a.URL, Description: a.Description, Author: a.Author, Published: a.Published})
	}
	renderJSON(w, r, http.StatusOK, res)
}

// renderFailure maps service errors to http statuses, unknown errors are logged as internal
func (s *Server) renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, subscription.ErrAnonymous):
		renderError(w, r, errors.New("authentication required"), http.StatusUnauthorized)
	case errors.Is(err, subscription.ErrEmptyName), errors.Is(err, subscription.ErrEmptyURL):
		renderError(w, r, err, http.StatusBadRequest)
	case errors.Is(err, service.ErrNotOwner):
		renderError(w, r, err, http.StatusForbidden)
	case errors.Is(err, repository.ErrNotFound):
		renderError(w, r, errors.New("not found"), http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidFeed):
		renderError(w, r, err, http.StatusUnprocessableEntity)
	default:
		lgr.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
		renderError(w, r, errors.New("internal error"), http.StatusInternalServerError)
	}
}

func toListResponse(l *domain.List) listResponse {
	return listResponse{ID: l.ID, Name: l.Name, IsDefault: l.IsDefault,
		SubscriptionCount: l.SubscriptionCount, CreatedAt: l.CreatedAt}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, rest.JSON{"error": errMsg})
}
