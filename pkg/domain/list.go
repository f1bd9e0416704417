package domain

import "time"

// DefaultListName is the name of the lazily created default list
const DefaultListName = "Home"

// List is a named, user-owned container of subscriptions
type List struct {
	ID                int64
	UserID            int64
	Name              string
	IsDefault         bool
	CreatedAt         time.Time
	SubscriptionCount int // live count, populated by list queries
}
