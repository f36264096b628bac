package portal

import (
	"net/http"

	"github.com/louisbranch/extracurricular-portal/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(routepath.RootPattern, h.handleIndex)
}
