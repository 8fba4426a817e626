package dataset

import (
	"os"
	"sync"
	"time"
)

// Cache memoizes loaded tables keyed by path and file modification time.
//
// The cache is owned by the caller rather than being process-global, so a
// stale entry can always be dropped explicitly via Invalidate. A changed
// modification time also invalidates on the next Load, which covers the
// common case of the source file being replaced in place.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	size    int64
	table   *Table
}

// NewCache creates an empty load cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Load returns the table for path, reading the file only when it has not
// been loaded before or has changed since. Concurrent callers for the same
// path serialize on the cache lock and observe an equivalent table.
func (c *Cache) Load(path string) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[path]; ok && e.modTime.Equal(info.ModTime()) && e.size == info.Size() {
		return e.table, nil
	}

	t, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.entries[path] = cacheEntry{
		modTime: info.ModTime(),
		size:    info.Size(),
		table:   t,
	}
	return t, nil
}

// Invalidate drops the cached entry for path. The next Load re-reads the
// file regardless of its modification time.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
