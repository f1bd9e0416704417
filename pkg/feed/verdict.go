package feed

import "github.com/feedhawk/feedhawk/pkg/domain"

// Verdict is the outcome of feed validation, either ValidFeed or InvalidFeed
type Verdict interface {
	verdict()
}

// ValidFeed carries the parsed feed
type ValidFeed struct {
	Feed *domain.ParsedFeed
}

// InvalidFeed carries a human-readable reason
type InvalidFeed struct {
	Reason string
}

func (ValidFeed) verdict()   {}
func (InvalidFeed) verdict() {}
