// Package sitemeta holds the site-wide metadata record of a personal blog
// (title, author, theme, social profiles) and the pieces that hand it to
// the site generator: a loader, exporters, a consumer-side checker, <head>
// helpers and a small read-only server that publishes the record.
//
// The record itself is plain data. Default returns the built-in values,
// Load overlays a config file and SITE_* environment variables, and nothing
// in the package mutates a record after it has been built.
package sitemeta

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// App serves a SiteMetadata record over HTTP. It wires together the
// record, server settings, middleware and routes.
type App struct {
	Meta   SiteMetadata
	Config ServerConfig
	Echo   *echo.Echo
	Logger *zap.Logger

	banner       *ImageInfo
	logo         *ImageInfo
	customRoutes []func(*App)
	setupOnce    sync.Once
	setupErr     error
}

// New creates an App publishing meta. A nil logger discards log output.
func New(meta SiteMetadata, cfg ServerConfig, logger *zap.Logger, opts ...Option) *App {
	cfg.setDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Meta:   meta,
		Config: cfg,
		Echo:   e,
		Logger: logger,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup checks the record when running strict, probes the local image
// assets, and registers middleware and routes. It runs once; Start calls it.
func (a *App) Setup() error {
	a.setupOnce.Do(func() {
		a.setupErr = a.setup()
	})
	return a.setupErr
}

func (a *App) setup() error {
	if err := Check(a.Meta); err != nil {
		if a.Config.Strict {
			return fmt.Errorf("sitemeta: refusing to serve invalid metadata: %w", err)
		}
		a.Logger.Warn("site metadata has problems", zap.Error(err))
	}

	a.banner = a.probe("socialBanner", a.Meta.SocialBanner)
	a.logo = a.probe("siteLogo", a.Meta.SiteLogo)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) probe(field, ref string) *ImageInfo {
	if ref == "" {
		return nil
	}
	info, err := ProbeImage(a.Config.StaticDir, ref)
	if err != nil {
		if !errors.Is(err, ErrRemoteImage) {
			a.Logger.Debug("image not probed", zap.String("field", field), zap.Error(err))
		}
		return nil
	}
	a.Logger.Debug("image probed",
		zap.String("field", field),
		zap.String("format", info.Format),
		zap.Int("width", info.Width),
		zap.Int("height", info.Height),
	)
	return &info
}

// Start serves until ctx is cancelled, then shuts down within
// Config.ShutdownGrace.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("serving site metadata",
			zap.String("addr", a.Config.Addr),
			zap.String("site", a.Meta.SiteURL),
		)
		errCh <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("sitemeta: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownGrace)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := a.Echo.Close(); closeErr != nil {
			return fmt.Errorf("sitemeta: close: %w", closeErr)
		}
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/site-metadata.json", a.handleExport(FormatJSON))
	e.GET("/site-metadata.yaml", a.handleExport(FormatYAML))
	e.GET("/siteMetadata.js", a.handleExport(FormatJS))
	e.GET("/head/", a.handleHead)
	e.GET("/person.jsonld", a.handlePerson)
	e.GET("/manifest.webmanifest", a.handleManifest)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/healthz", handleHealth)

	// Local logo and banner files, when a static dir is present.
	e.Static("/static", a.Config.StaticDir+"/static")
}

// homePage is the PageMeta of the landing page, with the probed banner size.
func (a *App) homePage() PageMeta {
	page := HomePage(a.Meta)
	if a.banner != nil {
		page.ImageWidth = a.banner.Width
		page.ImageHeight = a.banner.Height
	}
	return page
}
