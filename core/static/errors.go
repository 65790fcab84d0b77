package static

import "errors"

var (
	// ErrBadRequest indicates a request path with malformed percent-encoding.
	ErrBadRequest = errors.New("malformed request path")

	// ErrNotFound indicates that no file could be resolved for the request,
	// including the case where the root index document itself is missing.
	ErrNotFound = errors.New("file not found")

	// ErrForbidden indicates an OS-level permission denial, surfaced
	// distinctly from not-found.
	ErrForbidden = errors.New("permission denied")
)
