package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/docsplit/internal/document"
)

// TextParser handles plain text files. Form feeds delimit pages when
// present; otherwise the whole file is a single page.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var buf strings.Builder
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
		buf.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	doc := &document.Document{
		Title: titleFromFilename(filename),
	}

	for _, page := range strings.Split(buf.String(), "\f") {
		doc.Pages = append(doc.Pages, strings.TrimRight(page, "\n"))
	}

	return doc, nil
}
