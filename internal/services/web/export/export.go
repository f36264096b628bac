// Package export writes the portal as static files for static hosting.
package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/louisbranch/extracurricular-portal/internal/platform/logging"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/content"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/modules/portal"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/platform/pagerender"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/platform/placeholder"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/routepath"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/static"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// IndexFile is the exported landing page document.
const IndexFile = "index.html"

// Options configures a static export.
type Options struct {
	// BasePath is the URL prefix the exported site is hosted under.
	BasePath string
	Lang     language.Tag
	Content  content.Portal
	// StaticFS overrides the embedded static assets.
	StaticFS fs.FS
	Logger   *zap.Logger
}

// Write renders the landing page and its assets into dir. It returns the
// written paths relative to dir in sorted order. Output is byte-identical
// for identical options.
func Write(ctx context.Context, dir string, opts Options) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("output directory is required")
	}
	if err := routepath.ValidateBase(opts.BasePath); err != nil {
		return nil, fmt.Errorf("invalid base path: %w", err)
	}
	if err := opts.Content.Validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}
	staticFS := opts.StaticFS
	if staticFS == nil {
		staticFS = static.FS
	}
	logger := logging.OrNop(opts.Logger)

	files := make(map[string][]byte)
	portalContent := opts.Content
	if logoFile, svg, ok := placeholderFile(portalContent.Brand.LogoSrc); ok {
		files[logoFile] = svg
		portalContent.Brand.LogoSrc = "/" + logoFile
	}

	page := portal.BuildPage(portalContent, portal.PageOptions{BasePath: opts.BasePath, Lang: opts.Lang})
	index, err := pagerender.Render(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", IndexFile, err)
	}
	files[IndexFile] = index

	if err := collectStatic(staticFS, files); err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))
	for name := range files {
		written = append(written, name)
	}
	sort.Strings(written)
	for _, name := range written {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		target := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, fmt.Errorf("create directory for %s: %w", name, err)
		}
		if err := os.WriteFile(target, files[name], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		logger.Debug("export wrote file", zap.String("path", name), zap.Int("bytes", len(files[name])))
	}
	return written, nil
}

// placeholderFile maps a generated placeholder image path to the SVG file
// that stands in for it on a static host.
func placeholderFile(src string) (string, []byte, bool) {
	rest, ok := strings.CutPrefix(src, routepath.PlaceholderPrefix)
	if !ok {
		return "", nil, false
	}
	width, height, ok := strings.Cut(rest, "/")
	if !ok || strings.Contains(height, "/") {
		return "", nil, false
	}
	size, err := placeholder.ParseSize(width, height)
	if err != nil {
		return "", nil, false
	}
	name := strings.TrimPrefix(routepath.Placeholder(size.Width, size.Height), "/") + ".svg"
	return name, placeholder.SVG(size), true
}

func collectStatic(staticFS fs.FS, files map[string][]byte) error {
	prefix := strings.Trim(routepath.StaticPrefix, "/")
	return fs.WalkDir(staticFS, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk static assets: %w", err)
		}
		if entry.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(staticFS, name)
		if err != nil {
			return fmt.Errorf("read static asset %s: %w", name, err)
		}
		files[path.Join(prefix, name)] = data
		return nil
	})
}
