package obfuscation

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/obfuscation/core/logger"
	"github.com/dmitrymomot/obfuscation/core/response"
	"github.com/dmitrymomot/obfuscation/core/router"
	"github.com/dmitrymomot/obfuscation/core/server"
	"github.com/dmitrymomot/obfuscation/middleware"
	"github.com/dmitrymomot/obfuscation/pkg/encid"
)

// App wires the codec, router and HTTP server.
type App struct {
	config Config
	codec  *encid.Codec
	router router.Router[*router.Context]
	server *server.Server
	logger *slog.Logger
}

// AppOption overrides a component built by NewApp.
type AppOption func(*App) error

// NewApp builds the service from cfg. The codec is constructed here so a
// missing secret fails at startup.
func NewApp(cfg Config, opts ...AppOption) (*App, error) {
	app := &App{config: cfg}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = NewLogger(cfg)
	}

	if app.codec == nil {
		codec, err := cfg.Codec.NewCodec()
		if err != nil {
			return nil, err
		}
		app.codec = codec
	}

	if app.router == nil {
		app.router = router.New(
			router.WithErrorHandler[*router.Context](response.JSONErrorHandler[*router.Context]),
			router.WithLogger[*router.Context](app.logger),
			router.WithMiddleware(
				middleware.RequestID[*router.Context](),
				middleware.CORS[*router.Context](),
				middleware.LoggingWithLogger[*router.Context](app.logger),
			),
		)
	}

	if app.server == nil {
		s, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	RegisterRoutes(app.router, NewHandlers(app.codec, app.logger), cfg.AppName, app.logger)

	return app, nil
}

// NewLogger builds the service logger for cfg.Env and cfg.LogLevel.
// An unknown level falls back to the environment preset.
func NewLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithContextExtractors(middleware.RequestIDExtractor),
	}
	if level, err := logger.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...)
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) error {
		if log == nil {
			return ErrNilLogger
		}
		app.logger = log
		return nil
	}
}

// WithCodec sets the codec instead of deriving one from the config.
func WithCodec(codec *encid.Codec) AppOption {
	return func(app *App) error {
		if codec == nil {
			return ErrNilCodec
		}
		app.codec = codec
		return nil
	}
}

// WithRouter sets the router. Routes are registered on it by NewApp.
func WithRouter(r router.Router[*router.Context]) AppOption {
	return func(app *App) error {
		if r == nil {
			return ErrNilRouter
		}
		app.router = r
		return nil
	}
}

// WithServer sets the HTTP server.
func WithServer(s *server.Server) AppOption {
	return func(app *App) error {
		if s == nil {
			return ErrNilServer
		}
		app.server = s
		return nil
	}
}

// Handler returns the HTTP handler serving the API.
func (a *App) Handler() http.Handler {
	return a.router
}

// Codec returns the codec used by the API.
func (a *App) Codec() *encid.Codec {
	return a.codec
}

// Server returns the HTTP server.
func (a *App) Server() *server.Server {
	return a.server
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	a.logger.InfoContext(ctx, "starting obfuscation service",
		logger.Component("app"),
		logger.Version(a.config.Version),
		slog.Any("config", a.config),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(gctx, a.router))

	if err := g.Wait(); err != nil {
		a.logger.ErrorContext(ctx, "service stopped with error", logger.Component("app"), logger.Error(err))
		return err
	}

	a.logger.InfoContext(ctx, "service stopped", logger.Component("app"))
	return nil
}
