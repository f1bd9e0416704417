package server

import (
	"net/http"
	"strconv"
	"strings"
)

// Identity resolves the acting user of a request, zero means anonymous
type Identity interface {
	UserID(r *http.Request) int64
}

// HeaderIdentity trusts a user id header set by an authenticating proxy in front of the server
type HeaderIdentity struct {
	Header string // defaults to X-User-Id
}

// UserID returns the positive id from the header, or zero when missing or malformed
func (h HeaderIdentity) UserID(r *http.Request) int64 {
	name := h.Header
	if name == "" {
		name = "X-User-Id"
	}
	id, err := strconv.ParseInt(strings.TrimSpace(r.Header.Get(name)), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
