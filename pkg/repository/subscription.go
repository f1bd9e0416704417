package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SubscriptionRepository handles list-source links
type SubscriptionRepository struct {
	db *sqlx.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Subscribe links the source to the list, an existing link is left as is.
// Returns true if a new link was created.
func (r *SubscriptionRepository) Subscribe(ctx context.Context, listID, sourceID int64) (bool, error) {
	var inserted bool
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, `
			INSERT INTO subscriptions (list_id, source_id) VALUES (?, ?)
			ON CONFLICT(list_id, source_id) DO NOTHING`, listID, sourceID)
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
		return false, fmt.Errorf("subscribe: %w", err)
	}
	return inserted, nil
}

// Unsubscribe removes the link, returns true if one was removed
func (r *SubscriptionRepository) Unsubscribe(ctx context.Context, listID, sourceID int64) (bool, error) {
	var removed bool
	err := withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "DELETE FROM subscriptions WHERE list_id = ? AND source_id = ?", listID, sourceID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		removed = n > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("unsubscribe: %w", err)
	}
	return removed, nil
}

// Count returns the number of sources in the list
func (r *SubscriptionRepository) Count(ctx context.Context, listID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM subscriptions WHERE list_id = ?", listID); err != nil {
		return 0, fmt.Errorf("count subscriptions: %w", err)
	}
	return count, nil
}

// IsSubscribed reports whether any of the user's lists contains the source
func (r *SubscriptionRepository) IsSubscribed(ctx context.Context, userID, sourceID int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM subscriptions sub
			JOIN lists l ON l.id = sub.list_id
			WHERE l.user_id = ? AND sub.source_id = ?
		)
	`
	if err := r.db.GetContext(ctx, &exists, query, userID, sourceID); err != nil {
		return false, fmt.Errorf("check subscription: %w", err)
	}
	return exists, nil
}
