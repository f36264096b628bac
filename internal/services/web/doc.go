// Package web serves the extracurricular program portal over HTTP.
//
// The root handler composes the landing page and placeholder image modules
// with the shared static and health routes, then wraps them in panic
// recovery, request ids, access logging and gzip compression.
package web
