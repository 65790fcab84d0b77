package static

import (
	"path/filepath"
	"strings"
)

// fallbackContentType is used for extensions not present in the table.
const fallbackContentType = "application/octet-stream"

// contentTypes maps lower-cased file extensions to MIME types.
var contentTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".htm":   "text/html; charset=utf-8",
	".js":    "application/javascript",
	".mjs":   "application/javascript",
	".css":   "text/css; charset=utf-8",
	".json":  "application/json",
	".map":   "application/json",
	".txt":   "text/plain; charset=utf-8",
	".xml":   "application/xml",
	".csv":   "text/csv",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".avif":  "image/avif",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".eot":   "application/vnd.ms-fontobject",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
	".mp3":   "audio/mpeg",
	".wav":   "audio/wav",
	".wasm":  "application/wasm",
	".pdf":   "application/pdf",
	".zip":   "application/zip",
	".gz":    "application/gzip",
}

// compressible lists the text-like extensions eligible for gzip. Binary
// formats (images, fonts, video, archives, wasm) are excluded: they are
// typically already compressed.
var compressible = map[string]bool{
	".html": true,
	".htm":  true,
	".js":   true,
	".mjs":  true,
	".css":  true,
	".json": true,
	".map":  true,
	".txt":  true,
	".xml":  true,
	".csv":  true,
	".svg":  true,
}

// Negotiate maps a file path's extension to its MIME type and decides
// whether gzip applies. Unknown extensions get a generic binary type and
// never fail. Compression requires both a text-like extension and a client
// Accept-Encoding that includes gzip.
func Negotiate(filePath, acceptEncoding string) (contentType string, compress bool) {
	ext := strings.ToLower(filepath.Ext(filePath))

	contentType, ok := contentTypes[ext]
	if !ok {
		contentType = fallbackContentType
	}

	compress = compressible[ext] && strings.Contains(acceptEncoding, "gzip")
	return contentType, compress
}
