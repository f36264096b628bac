// Package routepath stores canonical HTTP paths for the portal web service.
package routepath

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	Root               = "/"
	RootPattern        = "GET /{$}"
	Health             = "/up"
	StaticPrefix       = "/static/"
	Stylesheet         = StaticPrefix + "portal.css"
	PlaceholderPrefix  = "/api/placeholder/"
	PlaceholderPattern = "GET " + PlaceholderPrefix + "{width}/{height}"
)

// Placeholder returns the generated placeholder image path for a size.
func Placeholder(width, height int) string {
	return PlaceholderPrefix + strconv.Itoa(width) + "/" + strconv.Itoa(height)
}

// NormalizeBase returns base with exactly one leading and one trailing slash.
// A blank base normalizes to Root.
func NormalizeBase(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return Root
	}
	return "/" + base + "/"
}

// ValidateBase reports whether base can be mounted as a literal path prefix.
// Every segment must be non-empty, not a dot segment, and unchanged by
// url.PathEscape, which rules out whitespace and pattern wildcards.
func ValidateBase(base string) error {
	normalized := NormalizeBase(base)
	if normalized == Root {
		return nil
	}
	for _, segment := range strings.Split(strings.Trim(normalized, "/"), "/") {
		switch {
		case segment == "":
			return fmt.Errorf("base path %q has an empty segment", base)
		case segment == "." || segment == "..":
			return fmt.Errorf("base path %q has dot segment %q", base, segment)
		case url.PathEscape(segment) != segment:
			return fmt.Errorf("base path %q has segment %q that needs escaping", base, segment)
		}
	}
	return nil
}

// WithBase prefixes a root-relative path with base. Fragments, relative
// paths and absolute URLs are returned unchanged.
func WithBase(base string, path string) string {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return path
	}
	return NormalizeBase(base) + strings.TrimPrefix(path, "/")
}
