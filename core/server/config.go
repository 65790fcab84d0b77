package server

import (
	"net"
	"strconv"
	"time"
)

// Config holds server configuration with environment variable support.
type Config struct {
	// Host is the local interface to bind; the server is not meant to be
	// reachable from outside the machine.
	Host string `env:"SHELLSERVE_HOST" envDefault:"127.0.0.1"`

	// Ports is the ordered candidate list probed at startup.
	Ports []int `env:"SHELLSERVE_PORTS" envDefault:"53472,53247,53274,53427,53724,53742"`

	// Timeouts
	ReadTimeout     time.Duration `env:"SHELLSERVE_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SHELLSERVE_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SHELLSERVE_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHELLSERVE_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Header limits
	MaxHeaderBytes int `env:"SHELLSERVE_MAX_HEADER_BYTES" envDefault:"1048576"` // 1MB
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:            "127.0.0.1",
		Ports:           DefaultCandidatePorts,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		IdleTimeout:     DefaultIdleTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxHeaderBytes:  DefaultMaxHeaderBytes,
	}
}

// NewFromConfig creates a Server bound to the given negotiated port.
// Additional options can override config values.
func NewFromConfig(cfg Config, port int, opts ...Option) *Server {
	configOpts := make([]Option, 0)

	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}
	if cfg.MaxHeaderBytes > 0 {
		configOpts = append(configOpts, WithMaxHeaderBytes(cfg.MaxHeaderBytes))
	}

	configOpts = append(configOpts, opts...)

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(port))
	return New(addr, configOpts...)
}
