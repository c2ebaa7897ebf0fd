// Package cache memoizes knight path results across queries.
package cache

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/lgbarn/knight-moves-go/internal/board"
	"github.com/lgbarn/knight-moves-go/internal/pathfind"
)

// Key identifies a query by its start and end squares.
type Key [2]board.Square

// String returns "start->end" in coordinate form.
func (k Key) String() string {
	return fmt.Sprintf("%v->%v", k[0], k[1])
}

// ComputeFunc produces a result on a cache miss.
type ComputeFunc func(start, end board.Square) (pathfind.Result, error)

// PathCache stores results keyed by (start, end). It is safe for concurrent use.
// Errors are never cached.
type PathCache struct {
	mu          sync.RWMutex
	entries     map[Key]pathfind.Result
	maxCapacity int // 0 = unlimited
	hits        int
	misses      int
	inflight    singleflight.Group
}

// New creates a cache. maxCapacity of 0 means unlimited capacity.
func New(maxCapacity int) *PathCache {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &PathCache{
		entries:     make(map[Key]pathfind.Result),
		maxCapacity: maxCapacity,
	}
}

// Get returns the cached result for (start, end), if any.
func (c *PathCache) Get(start, end board.Square) (pathfind.Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[Key{start, end}]
	return res, ok
}

// Add stores res unless the cache is full. It returns whether res was stored.
func (c *PathCache) Add(res pathfind.Result) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addLocked(res)
}

func (c *PathCache) addLocked(res pathfind.Result) bool {
	key := Key{res.Start, res.End}
	if _, ok := c.entries[key]; ok {
		return true
	}
	if c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity {
		return false
	}
	c.entries[key] = res
	return true
}

// GetOrCompute returns the cached result for (start, end), calling compute
// on a miss. Concurrent misses for the same key share one compute call.
func (c *PathCache) GetOrCompute(start, end board.Square, compute ComputeFunc) (pathfind.Result, error) {
	key := Key{start, end}

	c.mu.Lock()
	if res, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return res, nil
	}
	c.misses++
	c.mu.Unlock()

	v, err, _ := c.inflight.Do(key.String(), func() (interface{}, error) {
		res, err := compute(start, end)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.addLocked(res)
		c.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return pathfind.Result{}, err
	}
	return v.(pathfind.Result), nil
}

// Len returns the number of cached results.
func (c *PathCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts from GetOrCompute.
func (c *PathCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PathCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}
