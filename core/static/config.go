package static

import (
	"shellserve/core/cache"
)

// Config holds static-content settings with environment variable support.
type Config struct {
	// Root is the directory holding the pre-built SPA assets.
	Root string `env:"SHELLSERVE_ROOT" envDefault:"./dist"`

	// IndexFile is the SPA entry document at the top of the root.
	IndexFile string `env:"SHELLSERVE_INDEX" envDefault:"index.html"`

	// CacheCapacity bounds the compression cache entry count.
	CacheCapacity int `env:"SHELLSERVE_CACHE_CAPACITY" envDefault:"100"`

	// GzipLevel is the compression level for cached payloads.
	GzipLevel int `env:"SHELLSERVE_GZIP_LEVEL" envDefault:"6"`

	// MaxAge is the Cache-Control max-age in seconds.
	MaxAge int `env:"SHELLSERVE_MAX_AGE" envDefault:"3600"`
}

// NewFromConfig builds the resolver, compression cache, and dispatcher
// from configuration. Additional options can override config values.
func NewFromConfig(cfg Config, opts ...HandlerOption) (*Handler, error) {
	resolver, err := NewResolver(cfg.Root, WithIndexFile(cfg.IndexFile))
	if err != nil {
		return nil, err
	}

	cc := cache.New(
		cache.WithCapacity(cfg.CacheCapacity),
		cache.WithLevel(cfg.GzipLevel),
	)

	configOpts := []HandlerOption{WithMaxAge(cfg.MaxAge)}
	configOpts = append(configOpts, opts...)

	return NewHandler(resolver, cc, configOpts...), nil
}
