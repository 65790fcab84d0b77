package static

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultIndexFile is the SPA entry document served for unknown routes.
const DefaultIndexFile = "index.html"

// Target is a resolved filesystem path with its metadata, produced per request.
type Target struct {
	Path string
	Info fs.FileInfo
}

// Resolver maps raw request paths to files confined to a static root
// directory, with SPA fallback for unknown routes.
type Resolver struct {
	root  string
	index string
}

// ResolverOption configures path resolution behavior.
type ResolverOption func(*Resolver)

// WithIndexFile sets the SPA entry document name (default: "index.html").
func WithIndexFile(name string) ResolverOption {
	return func(r *Resolver) {
		if name != "" {
			r.index = name
		}
	}
}

// NewResolver creates a resolver rooted at the given directory.
// The root directory and its top-level index file must exist; a server
// without them cannot serve anything, so this fails fast at startup.
func NewResolver(root string, opts ...ResolverOption) (*Resolver, error) {
	abs, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return nil, fmt.Errorf("static: resolve root %q: %w", root, err)
	}

	r := &Resolver{
		root:  abs,
		index: DefaultIndexFile,
	}

	for _, opt := range opts {
		opt(r)
	}

	info, err := os.Stat(r.root)
	if err != nil {
		return nil, fmt.Errorf("static: root directory %q: %w", r.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static: root path %q is not a directory", r.root)
	}

	indexPath := filepath.Join(r.root, r.index)
	idx, err := os.Stat(indexPath)
	if err != nil {
		return nil, fmt.Errorf("static: index file %q: %w", indexPath, err)
	}
	if idx.IsDir() {
		return nil, fmt.Errorf("static: index path %q is a directory", indexPath)
	}

	return r, nil
}

// Root returns the absolute static root directory.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve maps a raw (still percent-encoded) request path to a file under
// the static root.
//
// The path is decoded, normalized, and joined with the root; normalization
// happens before the join so `..` segments cannot escape the root, and the
// joined result is validated as a descendant of the root as a second layer
// of defense. Unknown paths fall back to the root index document so
// client-side routes resolve to the SPA entry.
//
// Returns ErrBadRequest for malformed percent-encoding, ErrForbidden for
// permission denials, and ErrNotFound when nothing is resolvable at all.
func (r *Resolver) Resolve(rawPath string) (Target, error) {
	decoded, err := url.PathUnescape(rawPath)
	if err != nil {
		return Target{}, fmt.Errorf("static: decode %q: %w", rawPath, ErrBadRequest)
	}

	// Collapse `.` and `..` segments before touching the filesystem.
	clean := path.Clean("/" + decoded)

	full := filepath.Join(r.root, filepath.FromSlash(strings.TrimPrefix(clean, "/")))

	// The join must stay inside the root even if normalization missed
	// something host-specific (absolute paths, drive letters).
	if full != r.root && !strings.HasPrefix(full, r.root+string(filepath.Separator)) {
		return r.fallback()
	}

	info, err := os.Stat(full)
	switch {
	case err == nil && info.IsDir():
		return r.resolveDir(full)
	case err == nil:
		return Target{Path: full, Info: info}, nil
	case errors.Is(err, fs.ErrPermission):
		return Target{}, fmt.Errorf("static: stat %q: %w", full, ErrForbidden)
	case errors.Is(err, fs.ErrNotExist):
		return r.fallback()
	default:
		return Target{}, fmt.Errorf("static: stat %q: %w", full, err)
	}
}

// resolveDir serves a directory's own index file when present, otherwise
// falls back to the SPA entry document.
func (r *Resolver) resolveDir(dir string) (Target, error) {
	indexInDir := filepath.Join(dir, r.index)

	info, err := os.Stat(indexInDir)
	switch {
	case err == nil && !info.IsDir():
		return Target{Path: indexInDir, Info: info}, nil
	case errors.Is(err, fs.ErrPermission):
		return Target{}, fmt.Errorf("static: stat %q: %w", indexInDir, ErrForbidden)
	default:
		return r.fallback()
	}
}

// fallback resolves the root index document, the terminal SPA fallback.
func (r *Resolver) fallback() (Target, error) {
	indexPath := filepath.Join(r.root, r.index)

	info, err := os.Stat(indexPath)
	switch {
	case err == nil && !info.IsDir():
		return Target{Path: indexPath, Info: info}, nil
	case errors.Is(err, fs.ErrPermission):
		return Target{}, fmt.Errorf("static: stat %q: %w", indexPath, ErrForbidden)
	default:
		return Target{}, fmt.Errorf("static: index %q: %w", indexPath, ErrNotFound)
	}
}
