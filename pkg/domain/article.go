package domain

import "time"

// Article represents a normalized feed entry
type Article struct {
	ID          int64
	SourceID    int64
	GUID        string
	Title       string
	URL         string
	Description string
	Content     string
	Author      string
	Published   time.Time
	CreatedAt   time.Time

	SourceName string // joined, not stored with the article
}

// FeedMeta holds feed-level metadata
type FeedMeta struct {
	Title       string
	Description string
	SiteLink    string
	FeedURL     string
}

// ParsedFeed is a successfully parsed syndication document
type ParsedFeed struct {
	FeedMeta
	Articles []Article
}
