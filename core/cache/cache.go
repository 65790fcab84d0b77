package cache

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/gzip"
)

const (
	// DefaultCapacity is the maximum number of cached entries.
	DefaultCapacity = 100

	// DefaultLevel is the gzip compression level, a middle ground
	// between speed and ratio.
	DefaultLevel = 6
)

// Key identifies a cached payload by file path and modification time.
// A change to the underlying file changes its mtime and therefore the key,
// so stale entries age out of the FIFO without explicit invalidation.
type Key struct {
	Path      string
	ModMillis int64
}

// Cache memoizes gzip-compressed payloads keyed by (path, mtime).
// Bounded by capacity with FIFO eviction: when an insert would exceed the
// capacity, the oldest-inserted key is dropped regardless of access recency.
// Safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	level    int
	entries  map[Key][]byte
	order    []Key
}

// Option configures cache behavior.
type Option func(*Cache)

// WithCapacity sets the maximum number of entries (default: 100).
func WithCapacity(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithLevel sets the gzip compression level (default: 6).
func WithLevel(level int) Option {
	return func(c *Cache) {
		if level >= gzip.HuffmanOnly && level <= gzip.BestCompression {
			c.level = level
		}
	}
}

// New creates a compression cache with the given options.
func New(opts ...Option) *Cache {
	c := &Cache{
		capacity: DefaultCapacity,
		level:    DefaultLevel,
		entries:  make(map[Key][]byte),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetOrCompress returns the cached gzip payload for key, compressing raw and
// inserting it on a miss.
//
// Compression runs outside the lock, so two concurrent misses for the same
// key may both compress; the later insert wins. Both callers still receive
// valid compressed bytes, only the duplicate work is wasted.
func (c *Cache) GetOrCompress(key Key, raw []byte) ([]byte, error) {
	c.mu.Lock()
	if data, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return data, nil
	}
	c.mu.Unlock()

	compressed, err := c.compress(raw)
	if err != nil {
		return nil, fmt.Errorf("cache: compress %s: %w", key.Path, err)
	}

	c.mu.Lock()
	c.insert(key, compressed)
	c.mu.Unlock()

	return compressed, nil
}

// Contains reports whether key is currently cached.
func (c *Cache) Contains(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Len returns the current number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) compress(raw []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, err
	}

	if _, err := zw.Write(raw); err != nil {
		_ = zw.Close()
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// insert stores data under key and evicts the oldest entry when the capacity
// is exceeded. A concurrent insert for the same key is overwritten in place,
// keeping its original position in the eviction order. Caller holds c.mu.
func (c *Cache) insert(key Key, data []byte) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = data
		return
	}

	c.entries[key] = data
	c.order = append(c.order, key)

	for len(c.entries) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}
