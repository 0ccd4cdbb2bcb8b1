package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/docsplit/internal/document"
)

// MarkdownParser handles Markdown files using goldmark. Every heading
// opens a new page segment and contributes an outline entry nested by
// heading level, so markdown documents flow through the outline path.
type MarkdownParser struct{}

type mdHeading struct {
	title string
	level int
	page  int
}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := &document.Document{
		Title: titleFromFilename(filename),
	}

	var headings []mdHeading
	var page strings.Builder

	flushPage := func() {
		// A heading at the very top of the file opens the first page
		// rather than leaving an empty one before it.
		if page.Len() == 0 && len(doc.Pages) == 0 {
			return
		}
		doc.Pages = append(doc.Pages, strings.TrimSpace(page.String()))
		page.Reset()
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			flushPage()
			title := string(node.Text(src))
			headings = append(headings, mdHeading{
				title: title,
				level: node.Level,
				page:  len(doc.Pages),
			})
			page.WriteString(title)
		default:
			if t := blockText(n, src); t != "" {
				if page.Len() > 0 {
					page.WriteString("\n\n")
				}
				page.WriteString(t)
			}
		}
	}
	flushPage()

	doc.Outline = headingsToOutline(headings, 1)
	return doc, nil
}

// headingsToOutline nests a flat heading list so that flattening it
// reproduces the heading levels (h1 at depth 0).
func headingsToOutline(headings []mdHeading, base int) []document.OutlineNode {
	var nodes []document.OutlineNode
	i := 0
	for i < len(headings) {
		h := headings[i]
		if h.level <= base {
			nodes = append(nodes, document.OutlineLeaf{
				Title: h.title,
				Dest:  document.PageDest{Page: h.page},
			})
			i++
			continue
		}
		j := i
		for j < len(headings) && headings[j].level > base {
			j++
		}
		nodes = append(nodes, document.OutlineGroup{Nodes: headingsToOutline(headings[i:j], base+1)})
		i = j
	}
	return nodes
}

// blockText gets the text content of a goldmark AST node. Leaf blocks
// carry their raw source lines; container blocks are assembled from
// their children.
func blockText(n ast.Node, src []byte) string {
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		var buf bytes.Buffer
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}

	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t := blockText(c, src); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n")
}
