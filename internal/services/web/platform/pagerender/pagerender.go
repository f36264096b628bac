// Package pagerender centralizes full-document page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/extracurricular-portal/internal/services/web/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/louisbranch/extracurricular-portal/internal/services/web/platform/pagerender"
	spanName   = "web.render_page"
)

// Page describes one full HTML document response.
type Page struct {
	Document   webtemplates.DocumentOptions
	StatusCode int
	Body       templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Render renders page into a complete HTML document.
func Render(ctx context.Context, page Page) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, spanName,
		trace.WithAttributes(
			attribute.String("page.title", page.Document.Title),
			attribute.String("page.lang", page.Document.Lang),
		),
	)
	defer span.End()

	var buf bytes.Buffer
	if err := webtemplates.Document(page.Document).Render(templ.WithChildren(ctx, body), &buf); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render page")
		return nil, err
	}
	span.SetAttributes(attribute.Int("page.bytes", buf.Len()))
	return buf.Bytes(), nil
}

// WritePage renders page and writes it with its status code. Nothing is
// written when rendering fails so the caller can still send an error status.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	rendered, err := Render(httpx.RequestContext(r), page)
	if err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, rendered)
}
