// Command inkwell starts the blog server. All configuration comes from
// environment variables; storage paths default to data/, content/, and
// public/ relative to the working directory.
package main

import (
	"log"
	"os"

	"github.com/inkwell/inkwell"
)

func main() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("SESSION_SECRET environment variable is required")
	}

	app := inkwell.New(inkwell.Config{
		Name:        inkwell.EnvOr("SITE_NAME", "Blog"),
		URL:         inkwell.EnvOr("SITE_URL", "http://localhost:3000"),
		Description: os.Getenv("SITE_DESCRIPTION"),
		Author:      inkwell.EnvOr("SITE_AUTHOR", "Aditi"),

		Addr: inkwell.EnvOr("ADDR", ":3000"),

		StoreDriver: inkwell.EnvOr("STORE_DRIVER", "json"),
		DataFile:    inkwell.EnvOr("DATA_FILE", "data/blogs.json"),
		SQLitePath:  inkwell.EnvOr("SQLITE_PATH", "data/blog.db"),
		ContentDir:  inkwell.EnvOr("CONTENT_DIR", "content"),

		SessionSecret: secret,
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
	})
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
