// Package cache provides a thread-safe LRU cache of parsed patterns.
//
// Parsing is cheap compared to matching a long input, but callers that
// match many short strings against a handful of patterns given as text
// (brzozowski.MatchString, the CLI line filter) would otherwise reparse the
// pattern on every call.
package cache

import (
	"container/list"
	"sync"

	"github.com/KromDaniel/brzozowski/expr"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 256

type entry struct {
	pattern string
	tree    *expr.Expr
}

// Cache maps pattern text to parsed trees, evicting the least recently
// used pattern once full. Safe for concurrent use. Trees are immutable,
// so callers may share the returned values.
type Cache struct {
	mu       sync.RWMutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

// New creates a cache holding up to capacity patterns.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// Get returns the tree cached for pattern and marks it most recently used.
func (c *Cache) Get(pattern string) (*expr.Expr, bool) {
	c.mu.RLock()
	el, ok := c.items[pattern]
	if ok && c.ll.Front() == el {
		tree := el.Value.(*entry).tree
		c.mu.RUnlock()
		return tree, true
	}
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	// Re-check under the write lock; the entry may have been evicted.
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok = c.items[pattern]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*entry).tree, true
}

// Set stores tree for pattern, evicting the least recently used entry if
// the cache is full.
func (c *Cache) Set(pattern string, tree *expr.Expr) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[pattern]; ok {
		el.Value.(*entry).tree = tree
		c.ll.MoveToFront(el)
		return
	}
	if c.ll.Len() >= c.capacity {
		c.evictLocked()
	}
	c.items[pattern] = c.ll.PushFront(&entry{pattern: pattern, tree: tree})
}

// GetOrParse returns the cached tree for pattern, calling parse and caching
// its result on a miss. Errors are not cached.
func (c *Cache) GetOrParse(pattern string, parse func(string) (*expr.Expr, error)) (*expr.Expr, error) {
	if tree, ok := c.Get(pattern); ok {
		return tree, nil
	}
	tree, err := parse(pattern)
	if err != nil {
		return nil, err
	}
	c.Set(pattern, tree)
	return tree, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Capacity returns the maximum number of cached patterns.
func (c *Cache) Capacity() int { return c.capacity }

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ll.Init()
	c.items = make(map[string]*list.Element, c.capacity)
}

// evictLocked drops the least recently used entry. c.mu must be held for
// writing.
func (c *Cache) evictLocked() {
	el := c.ll.Back()
	if el == nil {
		return
	}
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry).pattern)
}
