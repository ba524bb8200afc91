// Package querycache is the process-wide read cache between the UI
// layer and the platform API. Entries are served without network
// access inside the staleness window, served stale with a background
// refetch after it, and evicted once nothing has read them for the
// GC window. Mutation handlers invalidate or remove keys; they never
// write values.
package querycache

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type Options struct {
	// StaleAfter is how long a fetched value counts as fresh.
	StaleAfter time.Duration
	// EvictAfter is how long an unread entry survives.
	EvictAfter time.Duration
	// ReadRetries is the number of automatic retries a failed fetch
	// gets. Zero means the default of one retry; NoRetries disables
	// them. Mutations never pass through the cache, so there is no
	// write counterpart.
	ReadRetries int
	// Metrics receives hit/miss/eviction counters when non-nil.
	Metrics *Metrics
}

const (
	DefaultStaleAfter  = 5 * time.Minute
	DefaultEvictAfter  = 30 * time.Minute
	DefaultReadRetries = 1

	NoRetries = -1
)

type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value      any
	fetchedAt  time.Time
	lastRead   time.Time
	stale      bool
	refetching bool
}

type Cache struct {
	mu       sync.Mutex
	entries  map[string]*entry
	watchers map[string][]chan any
	flights  singleflight.Group
	opts     Options

	done      chan struct{}
	closeOnce sync.Once
	now       func() time.Time
}

func New(opts Options) *Cache {
	if opts.StaleAfter <= 0 {
		opts.StaleAfter = DefaultStaleAfter
	}
	if opts.EvictAfter <= 0 {
		opts.EvictAfter = DefaultEvictAfter
	}
	if opts.ReadRetries == 0 {
		opts.ReadRetries = DefaultReadRetries
	} else if opts.ReadRetries < 0 {
		opts.ReadRetries = 0
	}
	c := &Cache{
		entries:  make(map[string]*entry),
		watchers: make(map[string][]chan any),
		opts:     opts,
		done:     make(chan struct{}),
		now:      time.Now,
	}
	go c.janitor()
	return c
}

func (c *Cache) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// Get returns the cached value for key, fetching through fetch on a
// miss. A fresh entry is returned without network access. A stale
// entry is returned immediately while one background refetch runs;
// watchers are notified when it lands. Concurrent readers of a missing
// key share a single fetch.
func (c *Cache) Get(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	ks := key.String()
	now := c.now()

	c.mu.Lock()
	e, ok := c.entries[ks]
	if ok {
		e.lastRead = now
		if !e.stale && now.Sub(e.fetchedAt) < c.opts.StaleAfter {
			v := e.value
			c.mu.Unlock()
			c.opts.Metrics.hit()
			return v, nil
		}
		v := e.value
		if !e.refetching {
			e.refetching = true
			go c.refetch(context.WithoutCancel(ctx), ks, fetch)
		}
		c.mu.Unlock()
		c.opts.Metrics.staleHit()
		return v, nil
	}
	c.mu.Unlock()
	c.opts.Metrics.miss()

	v, err, _ := c.flights.Do(ks, func() (any, error) {
		return c.fetchWithRetry(ctx, fetch)
	})
	if err != nil {
		return nil, err
	}
	c.store(ks, v)
	return v, nil
}

// Peek returns the cached value without touching the network. The
// second result reports presence; stale values are still returned.
func (c *Cache) Peek(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key.String()]
	if !ok {
		return nil, false
	}
	e.lastRead = c.now()
	return e.value, true
}

// Invalidate marks every entry covered by prefix as stale. The next
// read of a covered key serves the old value and triggers a refetch.
func (c *Cache) Invalidate(prefix Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for ks, e := range c.entries {
		if prefix.Covers(splitKey(ks)) {
			e.stale = true
		}
	}
}

// Remove hard-deletes every entry covered by key. Used after deletes:
// the record no longer exists and must not be served even stale.
func (c *Cache) Remove(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for ks := range c.entries {
		if key.Covers(splitKey(ks)) {
			delete(c.entries, ks)
		}
	}
}

// Watch registers a channel that receives the new value whenever a
// background refetch for key lands. The send is non-blocking; a slow
// watcher misses intermediate values, never blocks the cache. The
// returned cancel func unregisters the channel.
func (c *Cache) Watch(key Key) (<-chan any, func()) {
	ch := make(chan any, 1)
	ks := key.String()
	c.mu.Lock()
	c.watchers[ks] = append(c.watchers[ks], ch)
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		ws := c.watchers[ks]
		for i, w := range ws {
			if w == ch {
				c.watchers[ks] = append(ws[:i], ws[i+1:]...)
				break
			}
		}
		if len(c.watchers[ks]) == 0 {
			delete(c.watchers, ks)
		}
	}
	return ch, cancel
}

func (c *Cache) fetchWithRetry(ctx context.Context, fetch FetchFunc) (any, error) {
	v, err := fetch(ctx)
	for i := 0; err != nil && i < c.opts.ReadRetries; i++ {
		if ctx.Err() != nil {
			return nil, err
		}
		v, err = fetch(ctx)
	}
	return v, err
}

func (c *Cache) refetch(ctx context.Context, ks string, fetch FetchFunc) {
	v, err, _ := c.flights.Do(ks, func() (any, error) {
		return c.fetchWithRetry(ctx, fetch)
	})

	c.mu.Lock()
	e, ok := c.entries[ks]
	if !ok {
		// removed while the refetch was in flight; drop the result
		c.mu.Unlock()
		return
	}
	e.refetching = false
	if err != nil {
		// keep serving the stale value; the next read retries
		c.mu.Unlock()
		return
	}
	e.value = v
	e.fetchedAt = c.now()
	e.stale = false
	ws := c.watchers[ks]
	watchers := make([]chan any, len(ws))
	copy(watchers, ws)
	c.mu.Unlock()

	for _, w := range watchers {
		select {
		case w <- v:
		default:
		}
	}
}

func (c *Cache) store(ks string, v any) {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[ks]
	if !ok {
		e = &entry{}
		c.entries[ks] = e
	}
	e.value = v
	e.fetchedAt = now
	e.lastRead = now
	e.stale = false
}

func (c *Cache) janitor() {
	interval := c.opts.EvictAfter / 10
	if interval < time.Second {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-c.done:
			return
		case now := <-t.C:
			c.evictBefore(now.Add(-c.opts.EvictAfter))
		}
	}
}

func (c *Cache) evictBefore(deadline time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for ks, e := range c.entries {
		if e.lastRead.Before(deadline) && len(c.watchers[ks]) == 0 {
			delete(c.entries, ks)
			c.opts.Metrics.eviction()
		}
	}
}

func splitKey(ks string) Key {
	return Key(strings.Split(ks, "/"))
}
