package inkwell

import "time"

// Config holds all configuration for an inkwell site.
type Config struct {
	Name        string // Site name (default "Blog")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Default author for uploaded posts (default "Aditi")

	Addr string // Listen address (default ":3000")

	StoreDriver string // "json" (default) or "sqlite"
	DataFile    string // JSON record store path (default "data/blogs.json")
	SQLitePath  string // SQLite path when StoreDriver is "sqlite" (default "data/blog.db")
	ContentDir  string // Static markdown directory (default "content")

	SessionSecret string // Required: flash session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	ListCacheTTL time.Duration // Listing cache TTL (default 5min)
}

func (c *Config) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Author == "" {
		c.Author = "Aditi"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StoreDriver == "" {
		c.StoreDriver = "json"
	}
	if c.DataFile == "" {
		c.DataFile = "data/blogs.json"
	}
	if c.SQLitePath == "" {
		c.SQLitePath = "data/blog.db"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.ListCacheTTL == 0 {
		c.ListCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for public static assets (default "public").
// Uploaded images land in its "uploads" subdirectory.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithStore overrides the record store backend, bypassing StoreDriver.
func WithStore(s RecordStore) Option {
	return func(a *App) {
		a.Store = s
	}
}
