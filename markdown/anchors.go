package markdown

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// headingSelfLink wraps every heading's content in a link pointing at the
// heading's own anchor, so any heading can be linked to directly. It runs
// after goldmark has assigned auto heading IDs, which already disambiguate
// repeated headings by suffixing an index.
type headingSelfLink struct{}

func (t *headingSelfLink) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		id, ok := heading.AttributeString("id")
		if !ok {
			return ast.WalkSkipChildren, nil
		}
		var anchor []byte
		switch v := id.(type) {
		case []byte:
			anchor = v
		case string:
			anchor = []byte(v)
		default:
			return ast.WalkSkipChildren, nil
		}

		link := ast.NewLink()
		link.Destination = append([]byte("#"), anchor...)

		// Collect first: AppendChild detaches nodes from the heading,
		// which would break iteration over its child list.
		var children []ast.Node
		for c := heading.FirstChild(); c != nil; c = c.NextSibling() {
			children = append(children, c)
		}
		for _, c := range children {
			link.AppendChild(link, c)
		}
		heading.AppendChild(heading, link)
		return ast.WalkSkipChildren, nil
	})
}
