package discovery

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/feedhawk/feedhawk/pkg/domain"
)

// Checker verifies that a single URL exists
type Checker interface {
	Check(ctx context.Context, u string) bool
}

var channelIDRe = regexp.MustCompile(`^UC[A-Za-z0-9_-]{22}$`)

// ChannelResolver turns a channel handle, name or id into channel feed URLs
type ChannelResolver struct {
	checker    Checker
	classifier *Classifier
	catalog    ChannelCatalog
}

// NewChannelResolver makes a resolver verifying built URLs with checker
func NewChannelResolver(checker Checker, classifier *Classifier, catalog ChannelCatalog) *ChannelResolver {
	return &ChannelResolver{checker: checker, classifier: classifier, catalog: catalog}
}

// Resolve returns channel feeds for the handle: the channel-id feed and the by-user feed
// when they exist, followed by curated channels matching the name.
func (r *ChannelResolver) Resolve(ctx context.Context, handle string) []domain.SearchResult {
	name := r.classifier.ChannelText(handle)
	if name == "" {
		return nil
	}

	var res []domain.SearchResult
	if channelIDRe.MatchString(name) && r.catalog.ChannelTemplate != "" {
		u := fillTemplate(r.catalog.ChannelTemplate, "{id}", name)
		if r.checker.Check(ctx, u) {
			res = append(res, domain.SearchResult{Title: "YouTube Channel", URL: u,
				Description: "YouTube channel RSS feed", Category: domain.CategoryYouTube, Strategy: domain.StrategyYouTube})
		}
	}

	if r.catalog.UserTemplate != "" {
		u := fillTemplate(r.catalog.UserTemplate, "{id}", name)
		if r.checker.Check(ctx, u) {
			res = append(res, domain.SearchResult{Title: name + " (YouTube)", URL: u,
				Description: "YouTube user RSS feed", Category: domain.CategoryYouTube, Strategy: domain.StrategyYouTube})
		}
	}

	return append(res, r.popular(name)...)
}

// popular matches curated channels by name, in either direction, without network calls
func (r *ChannelResolver) popular(name string) []domain.SearchResult {
	if r.catalog.ChannelTemplate == "" {
		return nil
	}
	lname := strings.ToLower(name)
	var res []domain.SearchResult
	for _, ch := range r.catalog.Popular {
		if !strings.Contains(ch.Name, lname) && !strings.Contains(lname, ch.Name) {
			continue
		}
		res = append(res, domain.SearchResult{
			Title:       ch.Name + " (YouTube)",
			URL:         fillTemplate(r.catalog.ChannelTemplate, "{id}", ch.ID),
			Description: "Popular YouTube channel",
			Category:    domain.CategoryYouTube,
			Strategy:    domain.StrategyYouTube,
		})
	}
	return res
}

func fillTemplate(tpl, placeholder, value string) string {
	return strings.ReplaceAll(tpl, placeholder, url.QueryEscape(value))
}
