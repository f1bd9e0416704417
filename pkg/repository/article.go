package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/feedhawk/feedhawk/pkg/domain"
)

// ArticleRepository handles article storage
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          int64     `db:"id"`
	SourceID    int64     `db:"source_id"`
	GUID        string    `db:"guid"`
	Title       string    `db:"title"`
	URL         string    `db:"url"`
	Description string    `db:"description"`
	Content     string    `db:"content"`
	Author      string    `db:"author"`
	Published   time.Time `db:"published_at"`
	CreatedAt   time.Time `db:"created_at"`
	SourceName  string    `db:"source_name"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// InsertArticles stores articles in one transaction, skipping those already stored for the
// same source and url. Returns the number of new rows.
func (r *ArticleRepository) InsertArticles(ctx context.Context, articles []domain.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	var inserted int
	err := withRetry(ctx, func() error {
		inserted = 0
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // no-op after commit

		stmt, err := tx.PrepareNamedContext(ctx, `
			INSERT INTO articles (source_id, guid, title, url, description, content, author, published_at)
			VALUES (:source_id, :guid, :title, :url, :description, :content, :author, :published_at)
			ON CONFLICT(source_id, url) DO NOTHING`)
		if err != nil {
			return fmt.Errorf("prepare: %w", err)
		}
		defer stmt.Close()

		for _, a := range articles {
			row := articleSQL{SourceID: a.SourceID, GUID: a.GUID, Title: a.Title, URL: a.URL,
				Description: a.Description, Content: a.Content, Author: a.Author, Published: a.Published.UTC()}
			res, err := stmt.ExecContext(ctx, row)
			if err != nil {
				return fmt.Errorf("insert %s: %w", a.URL, err)
			}
			if n, err := res.RowsAffected(); err == nil {
				inserted += int(n)
			}
		}
		return tx.Commit()
	})
	if err != nil {
		return 0, fmt.Errorf("insert articles: %w", err)
	}
	return inserted, nil
}

// RecentArticles returns the newest articles from sources in any of the user's lists
func (r *ArticleRepository) RecentArticles(ctx context.Context, userID int64, limit int) ([]domain.Article, error) {
	query := `
		SELECT a.id, a.source_id, a.guid, a.title, a.url, a.description, a.content, a.author,
			a.published_at, a.created_at, s.name AS source_name
		FROM articles a
		JOIN sources s ON s.id = a.source_id
		WHERE a.source_id IN (
			SELECT sub.source_id FROM subscriptions sub
			JOIN lists l ON l.id = sub.list_id
			WHERE l.user_id = ?
		)
		ORDER BY a.published_at DESC, a.id DESC
		LIMIT ?
	`
	var rows []articleSQL
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("get recent articles: %w", err)
	}
	res := make([]domain.Article, 0, len(rows))
	for i := range rows {
		res = append(res, rows[i].toDomain())
	}
	return res, nil
}

// ArticleExists checks if the source already has an article with the url
func (r *ArticleRepository) ArticleExists(ctx context.Context, sourceID int64, url string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM articles WHERE source_id = ? AND url = ?)", sourceID, url)
	if err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return exists, nil
}

func (a *articleSQL) toDomain() domain.Article {
	return domain.Article{
		ID:          a.ID,
		SourceID:    a.SourceID,
		GUID:        a.GUID,
		Title:       a.Title,
		URL:         a.URL,
		Description: a.Description,
		Content:     a.Content,
		Author:      a.Author,
		Published:   a.Published,
		CreatedAt:   a.CreatedAt,
		SourceName:  a.SourceName,
	}
}
