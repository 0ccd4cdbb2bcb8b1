package parser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/dgallion1/docsplit/internal/document"
)

// PDFParser handles PDF files. Page text comes from the Go library with
// an optional pdftotext fallback; the bookmark tree, when present,
// becomes the document outline.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*document.Document, error) {
	// Both libraries need a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "docsplit-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	pages, err := extractPDFPages(tmpPath)
	if err != nil && p.FallbackPdftotext {
		pages, err = extractPdftotextPages(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	pages = normalizePageCount(tmpPath, pages)

	doc := &document.Document{
		Title: titleFromFilename(filename),
		Pages: pages,
	}

	// Bookmark extraction failure just means no outline; the heading
	// heuristic takes over downstream.
	doc.Outline = extractBookmarkOutline(tmpPath)

	return doc, nil
}

func extractPDFPages(path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func extractPdftotextPages(path string) ([]string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	// pdftotext separates pages with form feeds.
	return strings.Split(string(out), "\f"), nil
}

// normalizePageCount reconciles the extracted page list with the PDF's
// real page count, so outline page indices stay aligned. pdftotext
// output in particular carries a trailing form feed that would
// otherwise add a phantom empty page.
func normalizePageCount(path string, pages []string) []string {
	f, err := os.Open(path)
	if err != nil {
		return pages
	}
	defer f.Close()

	count, err := api.PageCount(f, nil)
	if err != nil || count <= 0 {
		return pages
	}
	for len(pages) > count && strings.TrimSpace(pages[len(pages)-1]) == "" {
		pages = pages[:len(pages)-1]
	}
	for len(pages) < count {
		pages = append(pages, "")
	}
	return pages
}

// extractBookmarkOutline reads the PDF bookmark tree and converts it to
// the raw outline structure. Returns nil when the PDF has no bookmarks
// or they cannot be read.
func extractBookmarkOutline(path string) []document.OutlineNode {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	bookmarks, err := api.Bookmarks(f, nil)
	if err != nil || len(bookmarks) == 0 {
		return nil
	}
	return bookmarksToOutline(bookmarks)
}

func bookmarksToOutline(bookmarks []pdfcpu.Bookmark) []document.OutlineNode {
	var nodes []document.OutlineNode
	for _, bm := range bookmarks {
		// PageFrom is 1-based; zero or negative marks a destination
		// the library could not resolve.
		dest := document.PageDest{Page: bm.PageFrom - 1}
		nodes = append(nodes, document.OutlineLeaf{Title: bm.Title, Dest: dest})
		if len(bm.Kids) > 0 {
			nodes = append(nodes, document.OutlineGroup{Nodes: bookmarksToOutline(bm.Kids)})
		}
	}
	return nodes
}
