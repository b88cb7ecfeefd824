package views

// Site holds site-wide settings handlers pass into every page so nothing
// is hardcoded in templates.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// Post is the view model for a single blog post card or detail page.
type Post struct {
	Title       string
	Description string
	Slug        string
	Date        string
	Author      string
	Image       string
	Link        string // "/blog/<slug>/"
}
