// Package cache provides a bounded in-memory cache of gzip-compressed file
// payloads keyed by (path, modification time).
//
// The cache is insertion-ordered with FIFO eviction: once the capacity is
// reached, the oldest-inserted entry is dropped regardless of how recently
// it was read. Keys embed the file's mtime, so a modified file naturally
// produces a new key and the stale payload ages out on its own.
//
//	cc := cache.New(cache.WithCapacity(100), cache.WithLevel(6))
//
//	data, err := cc.GetOrCompress(cache.Key{Path: p, ModMillis: m}, raw)
package cache
