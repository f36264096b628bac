// Package web parses portal web command flags and launches the server.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/extracurricular-portal/internal/platform/cmd"
	"github.com/louisbranch/extracurricular-portal/internal/platform/logging"
	"github.com/louisbranch/extracurricular-portal/internal/services/web"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/content"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/modules/portal"
	"go.uber.org/zap"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr    string `env:"WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	BasePath    string `env:"WEB_BASE_PATH" envDefault:"/"`
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
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BasePath, "base-path", cfg.BasePath, "URL prefix the portal is served under")
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

// ServerConfig resolves cfg into the web server inputs.
func ServerConfig(cfg Config, logger *zap.Logger) (web.Config, error) {
	lang, err := portal.ParseLang(cfg.Lang)
	if err != nil {
		return web.Config{}, err
	}
	portalContent, err := content.Load(cfg.ContentFile)
	if err != nil {
		return web.Config{}, fmt.Errorf("load content: %w", err)
	}
	return web.Config{
		HTTPAddr: cfg.HTTPAddr,
		BasePath: cfg.BasePath,
		Lang:     lang,
		Content:  portalContent,
		Logger:   logger,
	}, nil
}

// Run starts the portal web server.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(entrypoint.ServiceWeb, cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	serverConfig, err := ServerConfig(cfg, logger)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := web.NewServer(serverConfig)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
