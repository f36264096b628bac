// Package weberror writes shared error responses for web modules.
package weberror

import (
	"net/http"

	"github.com/louisbranch/extracurricular-portal/internal/platform/logging"
	apperrors "github.com/louisbranch/extracurricular-portal/internal/services/web/platform/errors"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/platform/httpx"
	"go.uber.org/zap"
)

// PublicMessage returns the user-safe text for err. Raw error strings are
// never exposed; the message is the status text of the mapped status.
func PublicMessage(err error) string {
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteModuleError writes a plain-text error response for err. Server-side
// failures are logged with the request context.
func WriteModuleError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if statusCode >= http.StatusInternalServerError {
		fields := []zap.Field{zap.Error(err), zap.Int("status", statusCode), zap.String("request_id", httpx.RequestIDFrom(r))}
		if r != nil && r.URL != nil {
			fields = append(fields, zap.String("method", r.Method), zap.String("path", r.URL.Path))
		}
		logging.OrNop(logger).Error("module request failed", fields...)
	}
	_ = httpx.WriteText(w, statusCode, PublicMessage(err)+"\n")
}
