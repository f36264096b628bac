// Package placeholder serves generated placeholder images.
package placeholder

import (
	"net/http"

	module "github.com/louisbranch/extracurricular-portal/internal/services/web/module"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/routepath"
	"go.uber.org/zap"
)

// Module provides the /api/placeholder/ image routes.
type Module struct {
	logger *zap.Logger
}

// New returns a placeholder image module.
func New(logger *zap.Logger) Module {
	return Module{logger: logger}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "placeholder"
}

// Mount wires placeholder routes under the placeholder prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.logger))
	return module.Mount{
		Prefix:   routepath.PlaceholderPrefix,
		Handler:  mux,
		Patterns: []string{routepath.PlaceholderPattern},
	}, nil
}
