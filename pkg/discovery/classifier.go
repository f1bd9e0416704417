package discovery

import (
	"net/url"
	"regexp"
	"strings"
)

// QueryKind is the classifier verdict for a search query
type QueryKind int

// query kinds
const (
	KindKeyword QueryKind = iota
	KindDirectURL
	KindChannelHandle
)

func (k QueryKind) String() string {
	switch k {
	case KindDirectURL:
		return "direct-url"
	case KindChannelHandle:
		return "channel-handle"
	default:
		return "keyword"
	}
}

// bareHostRe matches scheme-less host names like "techcrunch.com" or "blog.example.org/news"
var bareHostRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)*\.[a-z]{2,}(:\d{1,5})?(/\S*)?$`)

var defaultPlatformTokens = []string{"youtube", "yt", "youtube.com"}

// Classify classifies the query with the default video-platform tokens
func Classify(query string) QueryKind {
	return NewClassifier(defaultPlatformTokens).Classify(query)
}

// Classifier decides what a raw query looks like. It is pure and safe for concurrent use.
type Classifier struct {
	platformTokens []string
}

// NewClassifier makes a classifier recognizing the given video-platform tokens
func NewClassifier(platformTokens []string) *Classifier {
	if len(platformTokens) == 0 {
		platformTokens = defaultPlatformTokens
	}
	return &Classifier{platformTokens: lowerAll(platformTokens)}
}

// Classify returns the kind of the query. Empty input is a keyword.
func (c *Classifier) Classify(query string) QueryKind {
	q := normalizeQuery(query)
	switch {
	case q == "":
		return KindKeyword
	case strings.HasPrefix(q, "@"):
		return KindChannelHandle
	case isURL(q):
		return KindDirectURL
	case c.hasPlatformToken(q):
		return KindChannelHandle
	default:
		return KindKeyword
	}
}

// ChannelText strips the handle marker and platform tokens, leaving the channel name or id
func (c *Classifier) ChannelText(query string) string {
	q := strings.TrimSpace(query)
	q = strings.TrimPrefix(q, "@")
	words := strings.Fields(q)
	res := make([]string, 0, len(words))
	for _, w := range words {
		if c.isPlatformToken(strings.ToLower(w)) {
			continue
		}
		res = append(res, strings.TrimPrefix(w, "@"))
	}
	return strings.Join(res, "")
}

func (c *Classifier) hasPlatformToken(q string) bool {
	for _, w := range strings.Fields(q) {
		if c.isPlatformToken(w) {
			return true
		}
	}
	return false
}

func (c *Classifier) isPlatformToken(w string) bool {
	for _, t := range c.platformTokens {
		if w == t {
			return true
		}
	}
	return false
}

// isURL reports whether q is an absolute http(s) URL or a bare host name
func isURL(q string) bool {
	if strings.ContainsAny(q, " \t\n") {
		return false
	}
	if strings.HasPrefix(q, "http://") || strings.HasPrefix(q, "https://") {
		u, err := url.Parse(q)
		return err == nil && u.Host != ""
	}
	return bareHostRe.MatchString(q)
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
