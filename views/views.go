// Package views renders the site's pages as templ components. Components
// are built by hand with ComponentFunc so handlers can compose them with
// the markdown renderer's output.
package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func component(build func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		build(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func layout(b *strings.Builder, site Site, title string, body func(b *strings.Builder)) {
	b.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
	b.WriteString("<meta charset=\"utf-8\"/><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
	b.WriteString("<title>" + esc(title) + "</title>")
	if site.Description != "" {
		b.WriteString("<meta name=\"description\" content=\"" + attr(site.Description) + "\"/>")
	}
	b.WriteString("<link rel=\"stylesheet\" href=\"/public/site.css\"/>")
	b.WriteString("<script src=\"/public/copy.js\" defer></script>")
	b.WriteString("</head><body>")
	b.WriteString("<header class=\"site-header\"><nav>")
	b.WriteString("<a class=\"brand\" href=\"/\">" + esc(site.Name) + "</a>")
	b.WriteString("<a href=\"/blog/\">Blog</a>")
	b.WriteString("<a href=\"/submit/\">Write</a>")
	b.WriteString("</nav></header><main>")
	body(b)
	b.WriteString("</main>")
	b.WriteString("<footer class=\"site-footer\"><p>&copy; " + esc(site.Name) + "</p></footer>")
	b.WriteString("</body></html>")
}

func postCard(b *strings.Builder, p Post) {
	b.WriteString("<article class=\"post-card\">")
	if p.Image != "" {
		b.WriteString("<a href=\"" + attr(p.Link) + "\"><img src=\"" + attr(p.Image) + "\" alt=\"" + attr(p.Title) + "\" loading=\"lazy\"/></a>")
	}
	b.WriteString("<h2><a href=\"" + attr(p.Link) + "\">" + esc(p.Title) + "</a></h2>")
	b.WriteString("<p class=\"description\">" + esc(p.Description) + "</p>")
	b.WriteString("<p class=\"meta\">By " + esc(p.Author) + " | " + esc(formatDate(p.Date)) + "</p>")
	b.WriteString("<a class=\"read-more\" href=\"" + attr(p.Link) + "\">Read More</a>")
	b.WriteString("</article>")
}

// Home is the landing page with the most recent posts.
func Home(site Site, posts []Post) templ.Component {
	return component(func(b *strings.Builder) {
		layout(b, site, site.Name, func(b *strings.Builder) {
			b.WriteString("<section class=\"hero\"><h1>" + esc(site.Name) + "</h1>")
			if site.Description != "" {
				b.WriteString("<p>" + esc(site.Description) + "</p>")
			}
			b.WriteString("</section>")
			b.WriteString("<section class=\"post-grid\">")
			for _, p := range posts {
				postCard(b, p)
			}
			b.WriteString("</section>")
			b.WriteString("<p class=\"all-posts\"><a href=\"/blog/\">All posts &rarr;</a></p>")
		})
	})
}

// BlogIndex is the full listing page.
func BlogIndex(site Site, posts []Post) templ.Component {
	return component(func(b *strings.Builder) {
		layout(b, site, "Our Blogs | "+site.Name, func(b *strings.Builder) {
			b.WriteString("<h1>Our Blogs</h1>")
			b.WriteString("<section class=\"post-grid\">")
			for _, p := range posts {
				postCard(b, p)
			}
			b.WriteString("</section>")
		})
	})
}

// PostDetail is the reading page. body is the markdown pipeline's output.
func PostDetail(site Site, p Post, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
		b.WriteString("<meta charset=\"utf-8\"/><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
		b.WriteString("<title>" + esc(p.Title) + " | " + esc(site.Name) + "</title>")
		b.WriteString("<meta name=\"description\" content=\"" + attr(p.Description) + "\"/>")
		b.WriteString("<link rel=\"stylesheet\" href=\"/public/site.css\"/>")
		b.WriteString("<script src=\"/public/copy.js\" defer></script>")
		b.WriteString("</head><body>")
		b.WriteString("<header class=\"site-header\"><nav>")
		b.WriteString("<a class=\"brand\" href=\"/\">" + esc(site.Name) + "</a>")
		b.WriteString("<a href=\"/blog/\">Blog</a>")
		b.WriteString("<a href=\"/submit/\">Write</a>")
		b.WriteString("</nav></header><main><article>")
		b.WriteString("<h1>" + esc(p.Title) + "</h1>")
		if p.Description != "" {
			b.WriteString("<p class=\"description\">&quot;" + esc(p.Description) + "&quot;</p>")
		}
		b.WriteString("<p class=\"meta\">")
		if p.Author != "" {
			b.WriteString("By <span class=\"author\">" + esc(p.Author) + "</span>")
		}
		if p.Date != "" {
			b.WriteString(" &bull; " + esc(formatDate(p.Date)))
		}
		b.WriteString("</p>")
		if p.Image != "" {
			b.WriteString("<img class=\"cover\" src=\"" + attr(p.Image) + "\" alt=\"" + attr(p.Title) + "\"/>")
		}
		b.WriteString("<div class=\"prose\">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		var tail strings.Builder
		tail.WriteString("</div><hr/></article></main>")
		tail.WriteString("<footer class=\"site-footer\"><p>&copy; " + esc(site.Name) + "</p></footer>")
		tail.WriteString("</body></html>")
		_, err := io.WriteString(w, tail.String())
		return err
	})
}

// SubmitForm is the post submission page. notice carries a flash message or
// a validation error; csrf is embedded as a hidden field.
func SubmitForm(site Site, notice, csrf string) templ.Component {
	return component(func(b *strings.Builder) {
		layout(b, site, "Write a post | "+site.Name, func(b *strings.Builder) {
			b.WriteString("<h1>Write a post</h1>")
			if notice != "" {
				b.WriteString("<p class=\"notice\">" + esc(notice) + "</p>")
			}
			b.WriteString("<form method=\"post\" action=\"/submit/\" enctype=\"multipart/form-data\">")
			b.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + attr(csrf) + "\"/>")
			b.WriteString("<label>Title<input type=\"text\" name=\"title\" required/></label>")
			b.WriteString("<label>Description<input type=\"text\" name=\"description\" required/></label>")
			b.WriteString("<label>Author<input type=\"text\" name=\"author\" placeholder=\"" + attr(site.Author) + "\"/></label>")
			b.WriteString("<label>Content<textarea name=\"content\" rows=\"16\" required></textarea></label>")
			b.WriteString("<label>Image<input type=\"file\" name=\"image\" accept=\"image/*\" required/></label>")
			b.WriteString("<button type=\"submit\">Publish</button>")
			b.WriteString("</form>")
		})
	})
}

// NotFound is the styled 404 page.
func NotFound(site Site) templ.Component {
	return component(func(b *strings.Builder) {
		layout(b, site, "Not found | "+site.Name, func(b *strings.Builder) {
			b.WriteString("<h1>404</h1><p>That post doesn't exist.</p><p><a href=\"/blog/\">Back to the blog</a></p>")
		})
	})
}

// ServerError is the styled 500 page.
func ServerError(site Site) templ.Component {
	return component(func(b *strings.Builder) {
		layout(b, site, "Something went wrong | "+site.Name, func(b *strings.Builder) {
			b.WriteString("<h1>500</h1><p>Something went wrong. Try again in a moment.</p>")
		})
	})
}
