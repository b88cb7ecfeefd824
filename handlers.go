package inkwell

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/inkwell/views"
)

const homePostCount = 6

func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

func toViewPost(p PostRecord) views.Post {
	return views.Post{
		Title:       p.Title,
		Description: p.Description,
		Slug:        p.Slug,
		Date:        p.Date,
		Author:      p.Author,
		Image:       p.Image,
		Link:        "/blog/" + p.Slug + "/",
	}
}

func toViewPosts(posts []PostRecord) []views.Post {
	out := make([]views.Post, len(posts))
	for i, p := range posts {
		out[i] = toViewPost(p)
	}
	return out
}

// handleHome serves the landing page with the most recent posts.
func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.TopN(homePostCount)
	if err != nil {
		return err
	}
	return Render(c, views.Home(a.site(), toViewPosts(posts)))
}

// handleBlogIndex serves the full date-sorted listing from both sources.
func (a *App) handleBlogIndex(c echo.Context) error {
	posts, err := a.Cache.ListAll()
	if err != nil {
		return err
	}
	return Render(c, views.BlogIndex(a.site(), toViewPosts(posts)))
}

// handlePost resolves a slug across both sources and renders its markdown
// body through the pipeline.
func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Library.Resolve(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		}
		return err
	}
	body := a.Renderer.Component(post.Content)
	return Render(c, views.PostDetail(a.site(), toViewPost(post), body))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
