package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/extracurricular-portal/internal/services/web/platform/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteModuleErrorWritesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	req := httptest.NewRequest(http.MethodGet, "/api/placeholder/0/0", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, zap.New(core), apperrors.E(apperrors.KindInvalidInput, "width must be positive"))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request message", body)
	}
	if strings.Contains(body, "width must be positive") {
		t.Fatalf("body leaked raw error: %q", body)
	}
	if logs.Len() != 0 {
		t.Fatalf("client errors should not be logged, got %d entries", logs.Len())
	}
}

func TestWriteModuleErrorLogsServerFailures(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, zap.New(core), errors.New("template exploded"))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "template exploded") {
		t.Fatalf("body leaked raw error: %q", rr.Body.String())
	}
	entries := logs.FilterMessage("module request failed").All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-1" {
		t.Fatalf("request_id = %v, want req-1", got)
	}
}

func TestWriteModuleErrorNilErrorBecomesInternal(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteModuleError(rr, nil, nil, nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	WriteModuleError(nil, nil, nil, errors.New("ignored"))
}

func TestPublicMessage(t *testing.T) {
	t.Parallel()

	if got := PublicMessage(apperrors.E(apperrors.KindNotFound, "x")); got != "Not Found" {
		t.Fatalf("PublicMessage(not found) = %q", got)
	}
	if got := PublicMessage(nil); got != "Internal Server Error" {
		t.Fatalf("PublicMessage(nil) = %q", got)
	}
}
