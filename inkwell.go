// Package inkwell is a blog publishing engine built with Go, Echo, and
// templ. Posts arrive either through the ingestion endpoint (persisted in a
// record store) or as markdown files with front matter dropped into a
// content directory; both pools feed one listing, and post bodies are
// rendered through a goldmark pipeline with linked headings and
// syntax-highlighted, copyable code blocks.
package inkwell

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/inkwell/markdown"
)

// App wires together the record store, static source, resolver, render
// pipeline, cache, and HTTP surface.
type App struct {
	Config   Config
	Echo     *echo.Echo
	Store    RecordStore
	Static   *StaticSource
	Library  *Library
	Cache    *ListCache
	Renderer *markdown.Renderer

	submitLimiter *SubmitLimiter
	customRoutes  []func(*App)
	staticDir     string
}

// New creates an inkwell App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes storage, the render pipeline, middleware, and routes,
// then starts the server.
func (a *App) Start() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("inkwell: SessionSecret is required")
	}

	if a.Store == nil {
		store, err := openStore(a.Config)
		if err != nil {
			return fmt.Errorf("inkwell: init store: %w", err)
		}
		a.Store = store
	}

	a.Static = NewStaticSource(a.Config.ContentDir, a.Config.Author)
	a.Library = NewLibrary(a.Store, a.Static)
	a.Cache = NewListCache(a.Library, a.Config.ListCacheTTL)
	a.Renderer = markdown.New(markdown.DefaultOptions())
	a.submitLimiter = NewSubmitLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func openStore(cfg Config) (RecordStore, error) {
	switch cfg.StoreDriver {
	case "sqlite":
		return NewSQLiteStore(cfg.SQLitePath)
	default:
		return NewJSONStore(cfg.DataFile)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded engine assets (copy.js) are served under /public/ and fall
	// through to the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/copy.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.Static("/uploads", a.staticDir+"/"+uploadsSubdir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlogIndex)
	e.GET("/blog/:slug/", a.handlePost)

	e.GET("/submit/", a.handleSubmitForm)
	e.POST("/submit/", a.handleSubmit)
	e.POST("/api/upload", a.handleUpload)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
