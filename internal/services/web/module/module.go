// Package module defines what a portal feature hands to the root handler.
package module

import "net/http"

// Mount attaches a feature handler under a path prefix of the root mux.
// Prefix must start and end with "/".
type Mount struct {
	Prefix  string
	Handler http.Handler
	// Patterns lists the request patterns Handler answers. Used for startup
	// logs only; routing is up to Handler.
	Patterns []string
}

// Module is a portal feature that can be mounted on the root handler.
type Module interface {
	// ID names the module in logs and composition errors.
	ID() string
	Mount() (Mount, error)
}
