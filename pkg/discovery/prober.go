package discovery

import (
	"context"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/feedhawk/feedhawk/pkg/domain"
)

// Prober checks conventional feed paths of a site with HEAD requests
type Prober struct {
	client     *http.Client
	paths      []string
	userAgent  string
	maxWorkers int
}

// ProberConfig holds prober parameters, zero values get defaults
type ProberConfig struct {
	Timeout    time.Duration // per request, default 5s
	UserAgent  string
	Paths      []string // probe suffixes in priority order
	MaxWorkers int      // concurrent probes per base, default 4
}

// NewProber makes a prober with the given config
func NewProber(cfg ProberConfig) *Prober {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = domain.DefaultUserAgent
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 4
	}
	return &Prober{
		client:     &http.Client{Timeout: cfg.Timeout},
		paths:      cfg.Paths,
		userAgent:  cfg.UserAgent,
		maxWorkers: cfg.MaxWorkers,
	}
}

// Probe returns the candidate feed URLs under base which answered with 2xx or 3xx.
// Result keeps the order of probe paths regardless of completion order.
func (p *Prober) Probe(ctx context.Context, base string) []string {
	base = NormalizeURL(base)
	if base == "" || len(p.paths) == 0 {
		return nil
	}

	found := make([]bool, len(p.paths))
	g := errgroup.Group{}
	g.SetLimit(p.maxWorkers)
	for i, path := range p.paths {
		g.Go(func() error {
			found[i] = p.Check(ctx, joinPath(base, path))
			return nil
		})
	}
	_ = g.Wait()

	res := []string{}
	for i, ok := range found {
		if ok {
			res = append(res, joinPath(base, p.paths[i]))
		}
	}
	return res
}

// Check reports whether a single URL answers a HEAD request with status 200-399
func (p *Prober) Check(ctx context.Context, u string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u, http.NoBody)
	if err != nil {
		lgr.Printf("[DEBUG] can't make probe request for %s: %v", u, err)
		return false
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		lgr.Printf("[DEBUG] probe %s failed: %v", u, err)
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusBadRequest
}
