package markdown

import (
	"fmt"
	"html"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/util"
)

// codeBlockWrapper returns a wrapper renderer for fenced code blocks. Each
// block is wrapped in a <figure> carrying the declared language and a
// copy-to-clipboard button; the embedded copy.js script reads the
// data-feedback-duration attribute to time its confirmation state.
func codeBlockWrapper(feedbackMS int) func(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	return func(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
		if !entering {
			_, _ = w.WriteString("</figure>")
			return
		}
		lang := ""
		if l, ok := c.Language(); ok {
			lang = string(l)
		}
		if lang != "" {
			_, _ = w.WriteString(fmt.Sprintf(`<figure class="code-block" data-language="%s">`, html.EscapeString(lang)))
		} else {
			_, _ = w.WriteString(`<figure class="code-block">`)
		}
		_, _ = w.WriteString(fmt.Sprintf(
			`<button type="button" class="code-copy" data-feedback-duration="%d" aria-label="Copy code">Copy</button>`,
			feedbackMS,
		))
	}
}
