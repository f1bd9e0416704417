package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/feedhawk/feedhawk/pkg/domain"
)

// SourceRepository handles source-related database operations
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents a source for SQL operations
type sourceSQL struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	URL         string    `db:"url"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Active      bool      `db:"active"`
	ErrorCount  int       `db:"error_count"`
	LastError   string    `db:"last_error"`
	CreatedAt   time.Time `db:"created_at"`
}

const sourceColumns = "s.id, s.name, s.url, s.description, s.category, s.active, s.error_count, s.last_error, s.created_at"

// NewSourceRepository creates a new source repository
func NewSourceRepository(db *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

// GetSourceByURL retrieves a source by its canonical url
func (r *SourceRepository) GetSourceByURL(ctx context.Context, url string) (*domain.Source, error) {
	var s sourceSQL
	if err := r.db.GetContext(ctx, &s, "SELECT "+sourceColumns+" FROM sources s WHERE s.url = ?", url); err != nil {
		return nil, notFound(err, "get source by url")
	}
	return s.toDomain(), nil
}

// InsertSource adds a source unless one with the same url exists, reporting whether a row was added
func (r *SourceRepository) InsertSource(ctx context.Context, src *domain.Source) (bool, error) {
	category := src.Category
	if category == "" {
		category = domain.CategoryGeneral
	}
	row := &sourceSQL{Name: src.Name, URL: src.URL, Description: src.Description, Category: string(category), Active: true}

	var inserted bool
	err := withRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, `
			INSERT INTO sources (name, url, description, category, active)
			VALUES (:name, :url, :description, :category, :active)
			ON CONFLICT(url) DO NOTHING`, row)
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
		return false, fmt.Errorf("insert source: %w", err)
	}
	return inserted, nil
}

// ActiveSources returns all active sources ordered by name
func (r *SourceRepository) ActiveSources(ctx context.Context) ([]domain.Source, error) {
	var rows []sourceSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT "+sourceColumns+" FROM sources s WHERE s.active = 1 ORDER BY s.name, s.id"); err != nil {
		return nil, fmt.Errorf("get active sources: %w", err)
	}
	return toDomainSources(rows), nil
}

// SourcesForUser returns the distinct active sources in any of the user's lists
func (r *SourceRepository) SourcesForUser(ctx context.Context, userID int64) ([]domain.Source, error) {
	query := `
		SELECT DISTINCT ` + sourceColumns + `
		FROM sources s
		JOIN subscriptions sub ON sub.source_id = s.id
		JOIN lists l ON l.id = sub.list_id
		WHERE l.user_id = ? AND s.active = 1
		ORDER BY s.name, s.id
	`
	var rows []sourceSQL
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("get user sources: %w", err)
	}
	return toDomainSources(rows), nil
}

// SetSourceActive enables or disables a source
func (r *SourceRepository) SetSourceActive(ctx context.Context, id int64, active bool) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE sources SET active = ? WHERE id = ?", active, id)
		return err
	})
	if err != nil {
		return fmt.Errorf("update source status: %w", err)
	}
	return nil
}

// UpdateSourceError records a failed refresh and returns the number of consecutive failures
func (r *SourceRepository) UpdateSourceError(ctx context.Context, id int64, errMsg string) (int, error) {
	var count int
	err := withRetry(ctx, func() error {
		return r.db.GetContext(ctx, &count, `
			UPDATE sources
			SET error_count = error_count + 1,
			    last_error = ?
			WHERE id = ?
			RETURNING error_count`, errMsg, id)
	})
	if err != nil {
		return 0, notFound(err, "update source error")
	}
	return count, nil
}

// ResetSourceErrors clears the failure counter after a successful refresh
func (r *SourceRepository) ResetSourceErrors(ctx context.Context, id int64) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE sources SET error_count = 0, last_error = '' WHERE id = ?", id)
		return err
	})
	if err != nil {
		return fmt.Errorf("reset source errors: %w", err)
	}
	return nil
}

func (s *sourceSQL) toDomain() *domain.Source {
	return &domain.Source{
		ID:          s.ID,
		Name:        s.Name,
		URL:         s.URL,
		Description: s.Description,
		Category:    domain.Category(s.Category),
		Active:      s.Active,
		ErrorCount:  s.ErrorCount,
		LastError:   s.LastError,
		CreatedAt:   s.CreatedAt,
	}
}

func toDomainSources(rows []sourceSQL) []domain.Source {
	res := make([]domain.Source, 0, len(rows))
	for i := range rows {
		res = append(res, *rows[i].toDomain())
	}
	return res
}
