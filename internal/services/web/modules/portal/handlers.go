package portal

import (
	"net/http"

	"github.com/louisbranch/extracurricular-portal/internal/platform/logging"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/platform/pagerender"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/platform/weberror"
	"go.uber.org/zap"
)

type handlers struct {
	page   pagerender.Page
	logger *zap.Logger
}

func newHandlers(page pagerender.Page, logger *zap.Logger) handlers {
	return handlers{page: page, logger: logging.OrNop(logger)}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := pagerender.WritePage(w, r, h.page); err != nil {
		weberror.WriteModuleError(w, r, h.logger, err)
	}
}
