// Package http holds HTTP transport helpers for the portal web service.
package http

import (
	"net/http"
	"path"
	"strings"
)

// staticContentTypes covers the extensions embedded in static.FS.
var staticContentTypes = map[string]string{
	".css": "text/css; charset=utf-8",
}

// StaticContentType returns the explicit content type for a static asset
// name, or "" when the extension is unknown.
func StaticContentType(name string) string {
	return staticContentTypes[strings.ToLower(path.Ext(name))]
}

// WithStaticMime attaches explicit content-type hints for known static assets.
func WithStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType := StaticContentType(r.URL.Path); contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		next.ServeHTTP(w, r)
	})
}
