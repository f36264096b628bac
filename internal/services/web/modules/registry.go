package modules

import (
	"github.com/louisbranch/extracurricular-portal/internal/platform/logging"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/modules/placeholder"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/modules/portal"
)

// Default returns the modules mounted by the portal web server.
func Default(deps Dependencies) []Module {
	logger := logging.OrNop(deps.Logger)
	return []Module{
		portal.New(portal.Config{
			Content:  deps.Content,
			BasePath: deps.BasePath,
			Lang:     deps.Lang,
			Logger:   logger,
		}),
		placeholder.New(logger),
	}
}
