package logger

import (
	"io"
	"log/slog"
	"os"
)

// options holds logger construction settings.
type options struct {
	level  slog.Level
	json   bool
	output io.Writer
	attrs  []slog.Attr
}

// Option configures logger creation.
type Option func(*options)

// WithLevel sets the minimum log level (default: slog.LevelInfo).
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter switches output to JSON format.
// Text format is the default.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithTextFormatter switches output to human-readable text format.
func WithTextFormatter() Option {
	return func(o *options) {
		o.json = false
	}
}

// WithOutput sets the log destination (default: os.Stderr).
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = w
	}
}

// WithAttr adds a base attribute attached to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithDevelopment configures text output at debug level with an app name attribute.
func WithDevelopment(app string) Option {
	return func(o *options) {
		o.json = false
		o.level = slog.LevelDebug
		if app != "" {
			o.attrs = append(o.attrs, slog.String("app", app))
		}
	}
}

// WithProduction configures JSON output at info level with an app name attribute.
func WithProduction(app string) Option {
	return func(o *options) {
		o.json = true
		o.level = slog.LevelInfo
		if app != "" {
			o.attrs = append(o.attrs, slog.String("app", app))
		}
	}
}

// New creates a slog.Logger from the given options.
// Defaults to text format at info level on stderr.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		output: os.Stderr,
	}

	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var handler slog.Handler
	if o.json {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	}

	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops all records.
// Useful as a default for components that accept an optional logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
