package domain

import "time"

// Source represents a feed endpoint known to the system
type Source struct {
	ID          int64
	Name        string
	URL         string // canonical, unique
	Description string
	Category    Category
	Active      bool
	ErrorCount  int // consecutive refresh failures
	LastError   string
	CreatedAt   time.Time
}

// SourceMeta carries the descriptive fields used when a source is created
type SourceMeta struct {
	Name        string
	Description string
	Category    Category
}

// DefaultUserAgent identifies outgoing probe, scrape and fetch requests
const DefaultUserAgent = "FeedHawk RSS Reader 1.0"
