// Package portal serves the landing page of the extracurricular program portal.
package portal

import (
	"net/http"

	"github.com/louisbranch/extracurricular-portal/internal/services/web/content"
	module "github.com/louisbranch/extracurricular-portal/internal/services/web/module"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/routepath"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Config carries the inputs of the landing page module.
type Config struct {
	Content  content.Portal
	BasePath string
	Lang     language.Tag
	Logger   *zap.Logger
}

// Module provides the landing page route at the root prefix.
type Module struct {
	cfg Config
}

// New returns a landing page module.
func New(cfg Config) Module {
	return Module{cfg: cfg}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "portal"
}

// Mount validates the content and wires the landing page route under root.
// Any other path or method under root is answered by the mux (404 or 405).
func (m Module) Mount() (module.Mount, error) {
	if err := m.cfg.Content.Validate(); err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	page := BuildPage(m.cfg.Content, PageOptions{BasePath: m.cfg.BasePath, Lang: m.cfg.Lang})
	registerRoutes(mux, newHandlers(page, m.cfg.Logger))
	return module.Mount{
		Prefix:   routepath.Root,
		Handler:  mux,
		Patterns: []string{routepath.RootPattern},
	}, nil
}
