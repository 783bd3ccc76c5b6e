package planner

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/theoremus-urban-solutions/journey-planner/network"
)

// CacheStats contains statistics about the result cache.
type CacheStats struct {
	// Entries is the number of stored results.
	Entries int

	// Hits is the number of lookups answered from a stored result.
	Hits int64

	// Misses is the number of lookups that had to wait for a computation.
	Misses int64

	// Computations is the number of times the wrapped planner ran.
	Computations int64

	// Failures is the number of computations that returned an error.
	Failures int64

	// Generation increments on every Invalidate.
	Generation uint64
}

// Cache memoizes a JourneyPlanner per (origin, destination, result count).
//
// Concurrent requests for the same key share one computation. Results stay
// until Invalidate is called; there is no time-based expiry. Failed
// computations are never stored, so the next request for the key retries.
//
// Thread Safety:
//
//	Cache is safe for concurrent use.
type Cache struct {
	next   JourneyPlanner
	opts   Options
	flight singleflight.Group
	log    *slog.Logger

	mu         sync.RWMutex
	entries    map[string][]Journey
	generation uint64

	hits         atomic.Int64
	misses       atomic.Int64
	computations atomic.Int64
	failures     atomic.Int64
}

// NewCache wraps next. opts supplies the result count normalization so that
// requests for 0 and for the default count share an entry.
func NewCache(next JourneyPlanner, opts Options) *Cache {
	opts = opts.withDefaults()
	return &Cache{
		next:    next,
		opts:    opts,
		log:     opts.Logger,
		entries: make(map[string][]Journey),
	}
}

// Key builds the memo key of a request from its normalized inputs.
func Key(originCode, destinationCode string, resultCount int) string {
	return memoKey(network.NormalizeCode(originCode), network.NormalizeCode(destinationCode), strconv.Itoa(resultCount))
}

func memoKey(args ...string) string {
	var b strings.Builder
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

// Plan returns the stored result for the request or computes it through the
// wrapped planner. The returned slice is owned by the caller; the journeys in
// it are shared and must be treated as read-only.
//
// The wrapped planner runs with ctx's values but without its cancellation.
func (c *Cache) Plan(ctx context.Context, originCode, destinationCode string, resultCount int) ([]Journey, error) {
	n := c.opts.ResultCount(resultCount)
	key := Key(originCode, destinationCode, n)

	journeys, gen, ok := c.lookup(key)
	if ok {
		c.hits.Add(1)
		cacheRequests.WithLabelValues(cacheResultHit).Inc()
		return slices.Clone(journeys), nil
	}

	c.misses.Add(1)
	// the flight is shared by every waiter, so one caller's cancellation
	// must not fail the others
	flightCtx := context.WithoutCancel(ctx)
	v, err, shared := c.flight.Do(flightKey(gen, key), func() (any, error) {
		return c.compute(flightCtx, key, gen, originCode, destinationCode, n)
	})
	if shared {
		cacheRequests.WithLabelValues(cacheResultShared).Inc()
	} else {
		cacheRequests.WithLabelValues(cacheResultMiss).Inc()
	}
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]Journey)), nil
}

// lookup returns the stored result for key and the current generation.
func (c *Cache) lookup(key string) ([]Journey, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	journeys, ok := c.entries[key]
	return journeys, c.generation, ok
}

// compute runs inside the single flight for (gen, key). A result is stored
// only if no Invalidate happened since gen was read.
func (c *Cache) compute(ctx context.Context, key string, gen uint64, originCode, destinationCode string, n int) ([]Journey, error) {
	// a flight that finished between our lookup and Do may have stored it
	if journeys, cur, ok := c.lookup(key); ok && cur == gen {
		return journeys, nil
	}

	c.computations.Add(1)
	journeys, err := c.next.Plan(ctx, originCode, destinationCode, n)
	if err != nil {
		c.failures.Add(1)
		c.log.Debug("plan failed, not cached", slog.String("key", key), slog.String("error", err.Error()))
		return nil, err
	}

	c.mu.Lock()
	if c.generation == gen {
		c.entries[key] = journeys
		cacheEntries.Set(float64(len(c.entries)))
	}
	c.mu.Unlock()
	return journeys, nil
}

// Invalidate drops every stored result. Computations already in flight
// still answer their waiters but their results are not stored.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	dropped := len(c.entries)
	c.entries = make(map[string][]Journey)
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	cacheEntries.Set(0)
	cacheInvalidations.Inc()
	c.log.Info("journey cache invalidated", slog.Int("dropped", dropped), slog.Uint64("generation", gen))
}

// Stats returns current cache statistics.
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return CacheStats{
		Entries:      len(c.entries),
		Hits:         c.hits.Load(),
		Misses:       c.misses.Load(),
		Computations: c.computations.Load(),
		Failures:     c.failures.Load(),
		Generation:   c.generation,
	}
}

func flightKey(gen uint64, key string) string {
	return strconv.FormatUint(gen, 10) + "#" + key
}
