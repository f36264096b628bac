package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strings"

	"github.com/louisbranch/extracurricular-portal/internal/platform/logging"
	"github.com/louisbranch/extracurricular-portal/internal/platform/timeouts"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/app"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/content"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/modules"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/platform/httpx"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/routepath"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/static"
	webhttp "github.com/louisbranch/extracurricular-portal/internal/services/web/transport/http"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/transport/httpmux"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Config defines the inputs for the portal web server.
type Config struct {
	HTTPAddr string
	// BasePath is the URL prefix the portal is served under. Defaults to "/".
	BasePath string
	Lang     language.Tag
	Content  content.Portal
	Logger   *zap.Logger
	// StaticFS overrides the embedded static assets.
	StaticFS fs.FS
}

// Server hosts the portal HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler composes the portal modules, shared routes and middleware.
func NewHandler(config Config) (http.Handler, error) {
	if err := routepath.ValidateBase(config.BasePath); err != nil {
		return nil, fmt.Errorf("invalid base path: %w", err)
	}
	logger := logging.OrNop(config.Logger)
	staticFS := config.StaticFS
	if staticFS == nil {
		staticFS = static.FS
	}

	registry := modules.Default(modules.Dependencies{
		Content:  config.Content,
		BasePath: config.BasePath,
		Lang:     config.Lang,
		Logger:   logger,
	})
	composed, err := app.Compose(app.ComposeInput{
		Modules:        registry,
		StaticFS:       staticFS,
		WithStaticMime: webhttp.WithStaticMime,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}
	for _, route := range composed.Routes {
		logger.Debug("route mounted",
			zap.String("owner", route.Owner),
			zap.String("prefix", route.Prefix),
			zap.Strings("patterns", route.Patterns),
		)
	}

	root := composed.Handler

	if base := routepath.NormalizeBase(config.BasePath); base != routepath.Root {
		outer := http.NewServeMux()
		outer.Handle(base, http.StripPrefix(strings.TrimSuffix(base, "/"), root))
		httpmux.MountHealth(outer)
		root = outer
	}

	return httpx.Chain(root,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		httpx.AccessLog(logger),
		httpx.Compress(),
	), nil
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	logger := logging.OrNop(config.Logger)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
		WriteTimeout:      timeouts.Write,
		IdleTimeout:       timeouts.Idle,
		ErrorLog:          zap.NewStdLog(logger.Named("http")),
	}
	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

// ListenAndServe listens on the configured address and serves until the
// context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve runs the HTTP server on listener until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web listening", zap.String("addr", listener.Addr().String()))
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		<-serveErr
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		s.logger.Info("web stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the server immediately, dropping open connections.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		s.logger.Warn("close http server", zap.Error(err))
	}
}
