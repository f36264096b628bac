// Package export parses static export flags and writes the portal site.
package export

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/extracurricular-portal/internal/platform/cmd"
	"github.com/louisbranch/extracurricular-portal/internal/platform/branding"
	"github.com/louisbranch/extracurricular-portal/internal/platform/logging"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/content"
	siteexport "github.com/louisbranch/extracurricular-portal/internal/services/web/export"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/modules/portal"
	"go.uber.org/zap"
)

// Config holds the export command configuration.
type Config struct {
	OutDir      string `env:"EXPORT_OUT_DIR" envDefault:"dist"`
	BasePath    string `env:"EXPORT_BASE_PATH"`
	Lang        string `env:"WEB_LANG" envDefault:"ko"`
	ContentFile string `env:"WEB_CONTENT_FILE"`
	Log         logging.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.BasePath == "" {
		cfg.BasePath = "/" + branding.ProjectSlug + "/"
	}
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	fs.StringVar(&cfg.BasePath, "base-path", cfg.BasePath, "URL prefix the site is hosted under")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "document language (BCP 47)")
	fs.StringVar(&cfg.ContentFile, "content-file", cfg.ContentFile, "YAML file overriding the built-in portal content")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.Log.Development, "log-development", cfg.Log.Development, "human-readable console logs")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if _, err := portal.ParseLang(cfg.Lang); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run writes the static site described by cfg.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(entrypoint.ServiceExport, cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	lang, err := portal.ParseLang(cfg.Lang)
	if err != nil {
		return err
	}
	portalContent, err := content.Load(cfg.ContentFile)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceExport, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		written, err := siteexport.Write(ctx, cfg.OutDir, siteexport.Options{
			BasePath: cfg.BasePath,
			Lang:     lang,
			Content:  portalContent,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("export site: %w", err)
		}
		logger.Info("export complete", zap.String("out_dir", cfg.OutDir), zap.Strings("files", written))
		return nil
	})
}
