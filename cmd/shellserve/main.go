// Command shellserve serves a pre-built single-page application over local
// HTTP for a desktop shell. It binds the first free port from a fixed
// candidate list, reports it to the parent process, and shuts down
// gracefully on SIGTERM/SIGINT.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"shellserve/core/config"
	"shellserve/core/handshake"
	"shellserve/core/logger"
	"shellserve/core/server"
	"shellserve/core/static"
	"shellserve/middleware"
)

type appConfig struct {
	Server server.Config
	Static static.Config

	LogLevel  string `env:"SHELLSERVE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SHELLSERVE_LOG_FORMAT" envDefault:"text"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "shellserve:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	// An explicit positional argument overrides the configured static root,
	// so the shell can point the server at a build directory directly.
	if len(os.Args) > 1 && os.Args[1] != "" {
		cfg.Static.Root = os.Args[1]
	}

	log := newLogger(cfg)

	// Missing static root or entry document is fatal: the server cannot
	// usefully continue without anything to serve.
	handler, err := static.NewFromConfig(cfg.Static, static.WithLogger(log))
	if err != nil {
		return err
	}

	port, err := server.NegotiatePort(cfg.Server.Host, cfg.Server.Ports)
	if err != nil {
		return err
	}

	srv := server.NewFromConfig(cfg.Server, port,
		server.WithLogger(log),
		server.WithOnReady(func(addr string) {
			log.Info("serving static root", logger.File(cfg.Static.Root), logger.Port(port))
			notifyParent(log, port)
		}),
	)

	h := middleware.Chain(handler,
		middleware.RequestID(),
		middleware.LoggingWithLogger(log),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run(ctx, h))
	return g.Wait()
}

// notifyParent reports the bound port over the inherited IPC pipe when the
// process has one. A broken pipe is logged, not fatal: the server is still
// usable by anything that knows the candidate list.
func notifyParent(log *slog.Logger, port int) {
	w, ok := handshake.Writer()
	if !ok {
		return
	}
	defer w.Close()

	if err := handshake.Notify(w, port); err != nil {
		log.Warn("parent handshake failed", logger.Error(err))
		return
	}

	log.Debug("reported port to parent", logger.Port(port))
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithAttr(slog.String("app", "shellserve")),
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	case "warn":
		opts = append(opts, logger.WithLevel(slog.LevelWarn))
	case "error":
		opts = append(opts, logger.WithLevel(slog.LevelError))
	default:
		opts = append(opts, logger.WithLevel(slog.LevelInfo))
	}

	if strings.EqualFold(cfg.LogFormat, "json") {
		opts = append(opts, logger.WithJSONFormatter())
	}

	return logger.New(opts...)
}
