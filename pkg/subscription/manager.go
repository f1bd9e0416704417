// Package subscription keeps the relation between users' named lists and feed sources.
// All operations are idempotent: creating what exists returns the existing row, subscribing
// twice leaves one link.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/feedhawk/feedhawk/pkg/discovery"
	"github.com/feedhawk/feedhawk/pkg/domain"
	"github.com/feedhawk/feedhawk/pkg/repository"
)

// errors returned by the manager
var (
	ErrAnonymous = errors.New("anonymous user")
	ErrEmptyName = errors.New("empty list name")
	ErrEmptyURL  = errors.New("empty source url")
)

// SourceStore persists sources
type SourceStore interface {
	GetSourceByURL(ctx context.Context, url string) (*domain.Source, error)
	InsertSource(ctx context.Context, src *domain.Source) (bool, error)
	SourcesForUser(ctx context.Context, userID int64) ([]domain.Source, error)
}

// ListStore persists user lists
type ListStore interface {
	GetList(ctx context.Context, id int64) (*domain.List, error)
	GetDefaultList(ctx context.Context, userID int64) (*domain.List, error)
	GetListByName(ctx context.Context, userID int64, name string) (*domain.List, error)
	InsertDefaultList(ctx context.Context, userID int64) error
	InsertList(ctx context.Context, userID int64, name string) (bool, error)
	ListsForUser(ctx context.Context, userID int64) ([]domain.List, error)
}

// SubscriptionStore persists list-source links
type SubscriptionStore interface {
	Subscribe(ctx context.Context, listID, sourceID int64) (bool, error)
	Unsubscribe(ctx context.Context, listID, sourceID int64) (bool, error)
	Count(ctx context.Context, listID int64) (int, error)
	IsSubscribed(ctx context.Context, userID, sourceID int64) (bool, error)
}

// Store groups the persistence used by the manager
type Store struct {
	Sources       SourceStore
	Lists         ListStore
	Subscriptions SubscriptionStore
}

// Manager implements subscription bookkeeping on top of the store
type Manager struct {
	store Store
}

// NewManager makes a manager over the store
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// EnsureDefaultList returns the user's default list, creating it on first use
func (m *Manager) EnsureDefaultList(ctx context.Context, userID int64) (*domain.List, error) {
	if userID <= 0 {
		return nil, ErrAnonymous
	}
	list, err := m.store.Lists.GetDefaultList(ctx, userID)
	if err == nil {
		return list, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("get default list for user %d: %w", userID, err)
	}

	if err := m.store.Lists.InsertDefaultList(ctx, userID); err != nil {
		return nil, fmt.Errorf("create default list for user %d: %w", userID, err)
	}
	if list, err = m.store.Lists.GetDefaultList(ctx, userID); err != nil {
		return nil, fmt.Errorf("reload default list for user %d: %w", userID, err)
	}
	lgr.Printf("[INFO] created default list %d for user %d", list.ID, userID)
	return list, nil
}

// CreateList makes a named list for the user. A list with the same name is returned as is.
func (m *Manager) CreateList(ctx context.Context, userID int64, name string) (*domain.List, error) {
	if userID <= 0 {
		return nil, ErrAnonymous
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	inserted, err := m.store.Lists.InsertList(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("create list %q: %w", name, err)
	}
	list, err := m.store.Lists.GetListByName(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("reload list %q: %w", name, err)
	}
	if inserted {
		lgr.Printf("[INFO] created list %q (%d) for user %d", name, list.ID, userID)
	}
	return list, nil
}

// FindOrCreateSource returns the source with the canonical form of rawURL, creating it with
// meta when missing. Concurrent calls for the same url end up with the same row.
func (m *Manager) FindOrCreateSource(ctx context.Context, rawURL string, meta domain.SourceMeta) (*domain.Source, error) {
	u := discovery.CanonicalURL(rawURL)
	if u == "" {
		return nil, ErrEmptyURL
	}

	src, err := m.store.Sources.GetSourceByURL(ctx, u)
	if err == nil {
		return src, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("get source %s: %w", u, err)
	}

	name := strings.TrimSpace(meta.Name)
	if name == "" {
		name = hostOf(u)
	}
	inserted, err := m.store.Sources.InsertSource(ctx, &domain.Source{Name: name, URL: u,
		Description: strings.TrimSpace(meta.Description), Category: meta.Category})
	if err != nil {
		return nil, fmt.Errorf("create source %s: %w", u, err)
	}
	if src, err = m.store.Sources.GetSourceByURL(ctx, u); err != nil {
		return nil, fmt.Errorf("reload source %s: %w", u, err)
	}
	if inserted {
		lgr.Printf("[INFO] created source %d %q, %s", src.ID, src.Name, u)
	}
	return src, nil
}

// Subscribe links the source to the list. Subscribing an already linked source succeeds,
// only a persistence failure is reported.
func (m *Manager) Subscribe(ctx context.Context, listID, sourceID int64) error {
	inserted, err := m.store.Subscriptions.Subscribe(ctx, listID, sourceID)
	if err != nil {
		return fmt.Errorf("subscribe source %d to list %d: %w", sourceID, listID, err)
	}
	if !inserted {
		lgr.Printf("[DEBUG] source %d already in list %d", sourceID, listID)
	}
	return nil
}

// Unsubscribe removes the source from the list, returns true if it was there
func (m *Manager) Unsubscribe(ctx context.Context, listID, sourceID int64) (bool, error) {
	removed, err := m.store.Subscriptions.Unsubscribe(ctx, listID, sourceID)
	if err != nil {
		return false, fmt.Errorf("unsubscribe source %d from list %d: %w", sourceID, listID, err)
	}
	return removed, nil
}

// SubscriptionCount returns the number of sources in the list
func (m *Manager) SubscriptionCount(ctx context.Context, listID int64) (int, error) {
	count, err := m.store.Subscriptions.Count(ctx, listID)
	if err != nil {
		return 0, fmt.Errorf("count list %d: %w", listID, err)
	}
	return count, nil
}

// ListsForUser returns the user's lists, default first then by name, each with its live count.
// The default list is created if the user has none yet.
func (m *Manager) ListsForUser(ctx context.Context, userID int64) ([]domain.List, error) {
	if _, err := m.EnsureDefaultList(ctx, userID); err != nil {
		return nil, err
	}
	lists, err := m.store.Lists.ListsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get lists for user %d: %w", userID, err)
	}
	return lists, nil
}

// GetList returns a list by id, callers use it to check ownership
func (m *Manager) GetList(ctx context.Context, listID int64) (*domain.List, error) {
	list, err := m.store.Lists.GetList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("get list %d: %w", listID, err)
	}
	return list, nil
}

// IsSubscribed reports whether any of the user's lists holds the source
func (m *Manager) IsSubscribed(ctx context.Context, userID, sourceID int64) (bool, error) {
	if userID <= 0 {
		return false, nil
	}
	ok, err := m.store.Subscriptions.IsSubscribed(ctx, userID, sourceID)
	if err != nil {
		return false, fmt.Errorf("check subscription of user %d to %d: %w", userID, sourceID, err)
	}
	return ok, nil
}

// SourcesForUser returns active sources from all the user's lists
func (m *Manager) SourcesForUser(ctx context.Context, userID int64) ([]domain.Source, error) {
	if userID <= 0 {
		return nil, ErrAnonymous
	}
	sources, err := m.store.Sources.SourcesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get sources for user %d: %w", userID, err)
	}
	return sources, nil
}

func hostOf(u string) string {
	pu, err := url.Parse(u)
	if err != nil || pu.Hostname() == "" {
		return u
	}
	return strings.TrimPrefix(pu.Hostname(), "www.")
}

// NewStore groups sqlite repositories into a manager store
func NewStore(repos *repository.Repositories) Store {
	return Store{Sources: repos.Source, Lists: repos.List, Subscriptions: repos.Subscription}
}
