// Package markdown renders post bodies to HTML as a fixed pipeline:
// parse, heading anchors, heading self-links, syntax-highlighted and
// copyable code blocks, pretty-printed output. The pipeline holds no
// mutable state between calls, so a single Renderer is safe to share.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yosssi/gohtml"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Options configures the pipeline. The zero value is not usable; call
// DefaultOptions and override as needed.
type Options struct {
	// Theme is the chroma style used for fenced code blocks.
	Theme string
	// CopyFeedbackMS is how long the copy button shows its confirmation,
	// in milliseconds. Emitted as a data attribute for the client script.
	CopyFeedbackMS int
}

// DefaultOptions matches the site's fixed dark theme and a 3 second
// copy-button confirmation.
func DefaultOptions() Options {
	return Options{
		Theme:          "github-dark",
		CopyFeedbackMS: 3000,
	}
}

// Renderer is the configured markdown-to-HTML pipeline.
type Renderer struct {
	md   goldmark.Markdown
	opts Options
}

// New builds a Renderer. Stage order is fixed: goldmark parses and converts
// (stages 1-2) with auto heading IDs (stage 3), the headingSelfLink
// transformer wraps heading content in anchor self-links (stage 4), the
// highlighting extension annotates fenced code blocks and attaches the copy
// affordance (stage 5), and Render pretty-prints and serializes (stages 6-7).
func New(opts Options) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(opts.Theme),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
				),
				highlighting.WithWrapperRenderer(codeBlockWrapper(opts.CopyFeedbackMS)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(&headingSelfLink{}, 100),
			),
		),
		// Raw HTML in post bodies passes through untouched. Authors are
		// trusted; sanitize before embedding if that ever changes.
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Renderer{md: md, opts: opts}
}

// Render converts a markdown body to an HTML string. Output is
// deterministic: identical input and options yield byte-identical HTML.
func (r *Renderer) Render(body string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return formatHTML(buf.String()), nil
}

// formatHTML pretty-prints the document with gohtml, shielding <pre>
// blocks behind placeholders first: their whitespace is significant and
// must not be re-indented.
func formatHTML(s string) string {
	var pres []string
	var b strings.Builder
	for {
		start := strings.Index(s, "<pre")
		if start < 0 {
			b.WriteString(s)
			break
		}
		end := strings.Index(s[start:], "</pre>")
		if end < 0 {
			b.WriteString(s)
			break
		}
		end += start + len("</pre>")
		b.WriteString(s[:start])
		b.WriteString("\x00PRE" + strconv.Itoa(len(pres)) + "\x00")
		pres = append(pres, s[start:end])
		s = s[end:]
	}
	out := gohtml.Format(b.String())
	for i, pre := range pres {
		out = strings.Replace(out, "\x00PRE"+strconv.Itoa(i)+"\x00", pre, 1)
	}
	return out
}

// Component wraps Render as a templ.Component for direct use in views.
func (r *Renderer) Component(body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := r.Render(body)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}
