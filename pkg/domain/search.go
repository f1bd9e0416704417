package domain

import (
	"fmt"
	"strings"
)

// SearchResult is a discovered feed candidate, never persisted
type SearchResult struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Strategy    Strategy `json:"strategy"`
}

// Strategy identifies the discovery path which produced a result
type Strategy string

// discovery strategies, listed in priority order
const (
	StrategyWebsite     Strategy = "website"      // conventional path probing of a direct URL
	StrategyHTMLLink    Strategy = "html-link"    // <link> autodiscovery on a direct URL
	StrategyYouTube     Strategy = "youtube"      // channel resolution
	StrategyKeyword     Strategy = "keyword"      // path probing of keyword-mapped sites
	StrategyKeywordHTML Strategy = "keyword-html" // <link> autodiscovery on keyword-mapped sites
	StrategyDirectory   Strategy = "directory"    // curated directory feeds
	StrategyPopular     Strategy = "popular"      // editorial defaults for an empty query
)

var strategyPriority = map[Strategy]int{
	StrategyWebsite:     0,
	StrategyHTMLLink:    1,
	StrategyYouTube:     2,
	StrategyKeyword:     3,
	StrategyKeywordHTML: 4,
	StrategyDirectory:   5,
	StrategyPopular:     6,
}

// Priority returns the merge rank of the strategy, lower wins on duplicate URLs
func (s Strategy) Priority() int {
	if p, ok := strategyPriority[s]; ok {
		return p
	}
	return len(strategyPriority)
}

// Category classifies sources and search results
type Category string

// known categories
const (
	CategoryGeneral       Category = "General"
	CategoryWebsite       Category = "Website"
	CategoryYouTube       Category = "YouTube"
	CategorySocial        Category = "Social"
	CategoryNews          Category = "News"
	CategoryTech          Category = "Tech"
	CategoryAI            Category = "AI"
	CategorySports        Category = "Sports"
	CategoryScience       Category = "Science"
	CategoryEntertainment Category = "Entertainment"
	CategoryBusiness      Category = "Business"
	CategoryHealth        Category = "Health"
	CategoryLifestyle     Category = "Lifestyle"
	CategoryGaming        Category = "Gaming"
	CategoryFinance       Category = "Finance"
)

var categories = []Category{
	CategoryGeneral, CategoryWebsite, CategoryYouTube, CategorySocial, CategoryNews, CategoryTech,
	CategoryAI, CategorySports, CategoryScience, CategoryEntertainment, CategoryBusiness,
	CategoryHealth, CategoryLifestyle, CategoryGaming, CategoryFinance,
}

// Categories returns all known categories
func Categories() []Category {
	res := make([]Category, len(categories))
	copy(res, categories)
	return res
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a string to a known category, case-insensitive.
// Empty string maps to CategoryGeneral.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryGeneral, nil
	}
	for _, known := range categories {
		if strings.EqualFold(string(known), s) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler, rejecting unknown categories
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
