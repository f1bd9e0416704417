package discovery

import (
	"net"
	"net/url"
	"strings"
)

// NormalizeURL trims the input and adds https:// when the scheme is missing
func NormalizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		s = "https://" + s
	}
	return s
}

// CanonicalURL returns the form used to compare and store feed URLs.
// Scheme and host are lower-cased, default ports and fragments dropped, a trailing slash
// dropped from any path other than the root, query kept.
func CanonicalURL(raw string) string {
	s := NormalizeURL(raw)
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return s
	}
	u.Scheme = strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
		}
	}
	u.Host = host
	u.Fragment = ""
	u.RawFragment = ""
	if len(u.Path) > 1 && strings.HasSuffix(u.Path, "/") {
		u.Path = "/" + strings.Trim(u.Path, "/")
		u.RawPath = ""
	}
	return u.String()
}

// joinPath appends a probe suffix to the base URL, avoiding doubled slashes
func joinPath(base, suffix string) string {
	return strings.TrimRight(base, "/") + suffix
}
