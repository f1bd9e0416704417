// Package scheduler ingests articles of subscribed sources. FeedProcessor runs one refresh
// over a set of sources, Scheduler repeats it for every active source on an interval.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedhawk/feedhawk/pkg/domain"
)

// SourceStore lists sources due for refresh
type SourceStore interface {
	ActiveSources(ctx context.Context) ([]domain.Source, error)
}

// Params holds scheduler dependencies and settings
type Params struct {
	Sources        SourceStore
	Processor      *FeedProcessor
	UpdateInterval time.Duration
}

// Scheduler refreshes all active sources periodically
type Scheduler struct {
	sources        SourceStore
	processor      *FeedProcessor
	updateInterval time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex // serializes refresh runs
}

// NewScheduler creates a new scheduler instance
func NewScheduler(params Params) *Scheduler {
	if params.UpdateInterval <= 0 {
		params.UpdateInterval = 30 * time.Minute
	}
	return &Scheduler{
		sources:        params.Sources,
		processor:      params.Processor,
		updateInterval: params.UpdateInterval,
	}
}

// Start begins the periodic refresh, the first run starts immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.updateWorker(ctx)

	lgr.Printf("[INFO] scheduler started with update interval %v", s.updateInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// UpdateNow runs a refresh of all active sources and waits for it
func (s *Scheduler) UpdateNow(ctx context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sources, err := s.sources.ActiveSources(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("get active sources: %w", err)
	}
	return s.processor.Refresh(ctx, sources)
}

func (s *Scheduler) updateWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	s.update(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.update(ctx)
		}
	}
}

func (s *Scheduler) update(ctx context.Context) {
	stats, err := s.UpdateNow(ctx)
	if err != nil {
		if ctx.Err() == nil {
			lgr.Printf("[ERROR] scheduled refresh failed: %v", err)
		}
		return
	}
	lgr.Printf("[DEBUG] scheduled refresh done, %+v", stats)
}
