package static

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"shellserve/core/cache"
	"shellserve/core/logger"
)

// DefaultMaxAge is the Cache-Control max-age in seconds.
const DefaultMaxAge = 3600

// Handler dispatches GET and HEAD requests for static content. It resolves
// the request path, negotiates content type and compression, applies
// conditional-request semantics, and serves the body from disk or from the
// compression cache.
type Handler struct {
	resolver *Resolver
	cache    *cache.Cache
	log      *slog.Logger
	maxAge   int
}

// HandlerOption configures the dispatcher.
type HandlerOption func(*Handler)

// WithLogger sets the logger for dispatch-time failures (default: discard).
func WithLogger(log *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithMaxAge sets the Cache-Control max-age in seconds (default: 3600).
func WithMaxAge(seconds int) HandlerOption {
	return func(h *Handler) {
		if seconds >= 0 {
			h.maxAge = seconds
		}
	}
}

// NewHandler creates a dispatcher over the given resolver and compression
// cache. The cache is owned by the caller and shared across requests; one
// cache per server instance.
func NewHandler(resolver *Resolver, cc *cache.Cache, opts ...HandlerOption) *Handler {
	h := &Handler{
		resolver: resolver,
		cache:    cc,
		log:      logger.Discard(),
		maxAge:   DefaultMaxAge,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// ServeHTTP implements http.Handler.
//
// Every filesystem and codec failure is translated into a well-formed HTTP
// error response here; nothing propagates far enough to crash the process.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Resolve from the still-encoded form so malformed percent-encoding is
	// detected here rather than silently re-escaped.
	rawPath := r.URL.RawPath
	if rawPath == "" {
		rawPath = r.URL.EscapedPath()
	}

	target, err := h.resolver.Resolve(rawPath)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// The file can disappear or change between the resolver's stat and this
	// read; a clean 500 below is the required outcome, not a crash.
	raw, err := os.ReadFile(target.Path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			h.writeError(w, r, ErrForbidden)
			return
		}
		h.log.Error("read after successful resolve failed",
			logger.Error(err), logger.File(target.Path), logger.Path(r.URL.Path))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	contentType, compress := Negotiate(target.Path, r.Header.Get("Accept-Encoding"))
	etag := ComputeETag(target.Info.ModTime(), target.Info.Size(), compress)

	hdr := w.Header()
	hdr.Set("Content-Type", contentType)
	hdr.Set("Cache-Control", "public, max-age="+strconv.Itoa(h.maxAge))
	hdr.Set("Last-Modified", target.Info.ModTime().UTC().Format(http.TimeFormat))
	hdr.Set("Vary", "Accept-Encoding")
	hdr.Set("ETag", etag)

	if MatchesETag(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	body := raw
	if compress {
		key := cache.Key{Path: target.Path, ModMillis: target.Info.ModTime().UnixMilli()}

		gz, gzErr := h.cache.GetOrCompress(key, raw)
		if gzErr != nil {
			// Degrade to the identity encoding; the ETag must match the
			// representation actually served.
			h.log.Error("gzip failed, serving uncompressed",
				logger.Error(gzErr), logger.File(target.Path))
			etag = ComputeETag(target.Info.ModTime(), target.Info.Size(), false)
			hdr.Set("ETag", etag)
		} else {
			hdr.Set("Content-Encoding", "gzip")
			body = gz
		}
	}

	hdr.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)

	// HEAD computes all headers, including an accurate compressed length,
	// but writes no body bytes.
	if r.Method == http.MethodHead {
		return
	}

	if _, err := w.Write(body); err != nil {
		// Client disconnects abort the in-flight write; nothing to recover.
		h.log.Debug("response write aborted", logger.Error(err), logger.Path(r.URL.Path))
	}
}

// writeError maps resolver error variants to HTTP status codes with a
// plain-text body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrBadRequest):
		http.Error(w, "bad request", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		h.log.Error("resolve failed", logger.Error(err), logger.Path(r.URL.Path))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
