package usecase

import (
	"context"
	"sync"
	"time"
)

// Rotator cycles the highlighted testimonial. It auto-advances on a timer and
// wraps around in both directions; Next and Prev reset nothing, matching a
// carousel the user can nudge while it keeps rotating.
type Rotator struct {
	mu       sync.Mutex
	index    int
	count    int
	interval time.Duration
}

func NewRotator(count int, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Rotator{count: count, interval: interval}
}

// Run auto-advances until ctx is cancelled.
func (r *Rotator) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Next()
		}
	}
}

// Current returns the highlighted index.
func (r *Rotator) Current() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Next advances with wraparound.
func (r *Rotator) Next() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count > 0 {
		r.index = (r.index + 1) % r.count
	}
	return r.index
}

// Prev steps back with wraparound.
func (r *Rotator) Prev() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count > 0 {
		r.index = (r.index - 1 + r.count) % r.count
	}
	return r.index
}
