package placeholder

import (
	"net/http"

	"github.com/louisbranch/extracurricular-portal/internal/platform/logging"
	placeholderimage "github.com/louisbranch/extracurricular-portal/internal/services/web/platform/placeholder"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/platform/weberror"
	"go.uber.org/zap"
)

const cacheControl = "public, max-age=86400"

type handlers struct {
	logger *zap.Logger
}

func newHandlers(logger *zap.Logger) handlers {
	return handlers{logger: logging.OrNop(logger)}
}

func (h handlers) handleImage(w http.ResponseWriter, r *http.Request) {
	size, err := placeholderimage.ParseSize(r.PathValue("width"), r.PathValue("height"))
	if err != nil {
		weberror.WriteModuleError(w, r, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(placeholderimage.SVG(size))
}
