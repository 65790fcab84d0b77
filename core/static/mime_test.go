package static_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shellserve/core/static"
)

func TestNegotiate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		path           string
		acceptEncoding string
		wantType       string
		wantCompress   bool
	}{
		{
			name:           "javascript_with_gzip",
			path:           "/dist/app.js",
			acceptEncoding: "gzip, deflate, br",
			wantType:       "application/javascript",
			wantCompress:   true,
		},
		{
			name:           "html_with_gzip",
			path:           "index.html",
			acceptEncoding: "gzip",
			wantType:       "text/html; charset=utf-8",
			wantCompress:   true,
		},
		{
			name:           "css_without_gzip",
			path:           "styles.css",
			acceptEncoding: "br",
			wantType:       "text/css; charset=utf-8",
			wantCompress:   false,
		},
		{
			name:           "css_empty_accept_encoding",
			path:           "styles.css",
			acceptEncoding: "",
			wantType:       "text/css; charset=utf-8",
			wantCompress:   false,
		},
		{
			name:           "svg_is_compressible",
			path:           "logo.svg",
			acceptEncoding: "gzip",
			wantType:       "image/svg+xml",
			wantCompress:   true,
		},
		{
			name:           "png_never_compressed",
			path:           "logo.png",
			acceptEncoding: "gzip",
			wantType:       "image/png",
			wantCompress:   false,
		},
		{
			name:           "woff2_never_compressed",
			path:           "font.woff2",
			acceptEncoding: "gzip",
			wantType:       "font/woff2",
			wantCompress:   false,
		},
		{
			name:           "wasm_never_compressed",
			path:           "module.wasm",
			acceptEncoding: "gzip",
			wantType:       "application/wasm",
			wantCompress:   false,
		},
		{
			name:           "unknown_extension_octet_stream",
			path:           "data.xyz",
			acceptEncoding: "gzip",
			wantType:       "application/octet-stream",
			wantCompress:   false,
		},
		{
			name:           "no_extension_octet_stream",
			path:           "LICENSE",
			acceptEncoding: "gzip",
			wantType:       "application/octet-stream",
			wantCompress:   false,
		},
		{
			name:           "uppercase_extension_matches",
			path:           "APP.JS",
			acceptEncoding: "gzip",
			wantType:       "application/javascript",
			wantCompress:   true,
		},
		{
			name:           "json_with_gzip",
			path:           "manifest.json",
			acceptEncoding: "gzip",
			wantType:       "application/json",
			wantCompress:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			contentType, compress := static.Negotiate(tt.path, tt.acceptEncoding)
			assert.Equal(t, tt.wantType, contentType)
			assert.Equal(t, tt.wantCompress, compress)
		})
	}
}
