// Package static serves a pre-built Single Page Application from a local
// directory with cache-friendly HTTP semantics.
//
// The dispatcher handles GET and HEAD only. Request paths are decoded,
// normalized, and confined to the static root; unknown paths fall back to
// the root index document so client-side routing can take over. Responses
// carry Content-Type, ETag, Last-Modified, Cache-Control, and Vary headers,
// gzip-compress text-like payloads through a bounded cache, and honor
// If-None-Match with 304 responses.
//
//	h, err := static.NewFromConfig(cfg, static.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	http.ListenAndServe(addr, h)
//
// Individual pieces are exported for direct use: Resolver for path
// resolution, Negotiate for MIME and compression decisions, and
// ComputeETag/MatchesETag for conditional requests.
package static
