package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/feedhawk/feedhawk/pkg/domain"
)

// ListRepository handles user list operations
type ListRepository struct {
	db *sqlx.DB
}

// listSQL represents a list for SQL operations
type listSQL struct {
	ID                int64     `db:"id"`
	UserID            int64     `db:"user_id"`
	Name              string    `db:"name"`
	IsDefault         bool      `db:"is_default"`
	CreatedAt         time.Time `db:"created_at"`
	SubscriptionCount int       `db:"subscription_count"`
}

const listQuery = `
	SELECT l.id, l.user_id, l.name, l.is_default, l.created_at,
		(SELECT COUNT(*) FROM subscriptions sub WHERE sub.list_id = l.id) AS subscription_count
	FROM lists l
`

// NewListRepository creates a new list repository
func NewListRepository(db *sqlx.DB) *ListRepository {
	return &ListRepository{db: db}
}

// GetList retrieves a list by ID with its subscription count
func (r *ListRepository) GetList(ctx context.Context, id int64) (*domain.List, error) {
	var l listSQL
	if err := r.db.GetContext(ctx, &l, listQuery+"WHERE l.id = ?", id); err != nil {
		return nil, notFound(err, "get list")
	}
	return l.toDomain(), nil
}

// GetDefaultList retrieves the user's default list
func (r *ListRepository) GetDefaultList(ctx context.Context, userID int64) (*domain.List, error) {
	var l listSQL
	if err := r.db.GetContext(ctx, &l, listQuery+"WHERE l.user_id = ? AND l.is_default = 1", userID); err != nil {
		return nil, notFound(err, "get default list")
	}
	return l.toDomain(), nil
}

// GetListByName retrieves the user's list with the given name
func (r *ListRepository) GetListByName(ctx context.Context, userID int64, name string) (*domain.List, error) {
	var l listSQL
	if err := r.db.GetContext(ctx, &l, listQuery+"WHERE l.user_id = ? AND l.name = ?", userID, name); err != nil {
		return nil, notFound(err, "get list by name")
	}
	return l.toDomain(), nil
}

// InsertDefaultList creates the user's default list. An existing list with the default name
// is promoted instead, so concurrent calls converge on a single default list.
func (r *ListRepository) InsertDefaultList(ctx context.Context, userID int64) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO lists (user_id, name, is_default) VALUES (?, ?, 1)
			ON CONFLICT(user_id, name) DO UPDATE SET is_default = 1`, userID, domain.DefaultListName)
		return err
	})
	if err != nil {
		return fmt.Errorf("insert default list: %w", err)
	}
	return nil
}

// InsertList creates a non-default list unless the user already has one with this name,
// reporting whether a row was added
func (r *ListRepository) InsertList(ctx context.Context, userID int64, name string) (bool, error) {
	var inserted bool
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `
			INSERT INTO lists (user_id, name, is_default) VALUES (?, ?, 0)
			ON CONFLICT(user_id, name) DO NOTHING`, userID, name)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		inserted = n > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("insert list: %w", err)
	}
	return inserted, nil
}

// ListsForUser returns the user's lists, default first then by name, with live subscription counts
func (r *ListRepository) ListsForUser(ctx context.Context, userID int64) ([]domain.List, error) {
	var rows []listSQL
	if err := r.db.SelectContext(ctx, &rows, listQuery+"WHERE l.user_id = ? ORDER BY l.is_default DESC, l.name", userID); err != nil {
		return nil, fmt.Errorf("get lists for user: %w", err)
	}
	res := make([]domain.List, 0, len(rows))
	for i := range rows {
		res = append(res, *rows[i].toDomain())
	}
	return res, nil
}

func (l *listSQL) toDomain() *domain.List {
	return &domain.List{
		ID:                l.ID,
		UserID:            l.UserID,
		Name:              l.Name,
		IsDefault:         l.IsDefault,
		CreatedAt:         l.CreatedAt,
		SubscriptionCount: l.SubscriptionCount,
	}
}
