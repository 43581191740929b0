// Package ratelimit provides per-client admission control for tracked
// redirects: a fixed window of Limit admissions every Window per key.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultLimit  = 8
	DefaultWindow = 15 * time.Second

	// Buckets untouched for this many windows are swept.
	idleWindows = 10
)

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter decides whether a request keyed by client identity may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) Decision
}

type bucket struct {
	mu          sync.Mutex
	count       int
	windowStart time.Time
	evicted     bool
}

// MemoryLimiter keeps its buckets in process memory. State is lost on restart
// and is not shared between instances; use RedisLimiter for that.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	limit  int
	window time.Duration
	now    func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

var _ Limiter = (*MemoryLimiter)(nil)

// NewMemoryLimiter creates a limiter admitting limit requests per window and
// starts its idle-bucket sweeper. Call Close to stop the sweeper.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	l := newMemoryLimiter(limit, window, time.Now)
	go l.sweep(window * idleWindows)
	return l
}

func newMemoryLimiter(limit int, window time.Duration, now func() time.Time) *MemoryLimiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &MemoryLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
		now:     now,
		stop:    make(chan struct{}),
	}
}

// Allow admits the request if key has fewer than limit admissions in its
// current window. A request after the window elapsed opens a new window.
func (l *MemoryLimiter) Allow(_ context.Context, key string) Decision {
	for {
		b := l.bucket(key)
		now := l.now()

		b.mu.Lock()
		if b.evicted {
			b.mu.Unlock()
			continue
		}

		if b.count == 0 || now.Sub(b.windowStart) > l.window {
			b.count = 1
			b.windowStart = now
			d := l.decision(true, b)
			b.mu.Unlock()
			return d
		}

		if b.count >= l.limit {
			d := l.decision(false, b)
			b.mu.Unlock()
			return d
		}

		b.count++
		d := l.decision(true, b)
		b.mu.Unlock()
		return d
	}
}

// Close stops the sweeper. Allow keeps working afterwards.
func (l *MemoryLimiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *MemoryLimiter) decision(allowed bool, b *bucket) Decision {
	return Decision{
		Allowed:   allowed,
		Limit:     l.limit,
		Remaining: max(l.limit-b.count, 0),
		ResetAt:   b.windowStart.Add(l.window),
	}
}

func (l *MemoryLimiter) bucket(key string) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{}
		l.buckets[key] = b
	}
	return b
}

func (l *MemoryLimiter) sweep(idle time.Duration) {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.evictIdle(idle)
		}
	}
}

func (l *MemoryLimiter) evictIdle(idle time.Duration) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, b := range l.buckets {
		b.mu.Lock()
		if now.Sub(b.windowStart) > idle {
			b.evicted = true
			delete(l.buckets, key)
		}
		b.mu.Unlock()
	}
}

// Size returns the number of live buckets.
func (l *MemoryLimiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
