// Package modules defines web module registry helpers.
package modules

import (
	"github.com/louisbranch/extracurricular-portal/internal/services/web/content"
	module "github.com/louisbranch/extracurricular-portal/internal/services/web/module"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the shared inputs required to compose the web module
// registry.
type Dependencies struct {
	Content  content.Portal
	BasePath string
	Lang     language.Tag
	Logger   *zap.Logger
}
