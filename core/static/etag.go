package static

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ComputeETag derives a quoted hex validator from file metadata and the
// compression decision. The same unmodified file with the same compression
// decision always yields the same ETag; any content change moves the mtime
// or size and produces a new one.
func ComputeETag(modTime time.Time, size int64, compressed bool) string {
	flag := "0"
	if compressed {
		flag = "1"
	}

	sum := xxhash.Sum64String(
		strconv.FormatInt(modTime.UnixMilli(), 10) + ":" +
			strconv.FormatInt(size, 10) + ":" + flag,
	)

	return fmt.Sprintf("%q", fmt.Sprintf("%016x", sum))
}

// MatchesETag reports whether an If-None-Match header value matches the
// computed ETag. Exact byte comparison, no weak-validator semantics.
func MatchesETag(ifNoneMatch, etag string) bool {
	return ifNoneMatch != "" && ifNoneMatch == etag
}
