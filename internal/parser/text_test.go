package parser

import (
	"strings"
	"testing"
)

func TestTextParser_SinglePage(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("line one\nline two\n"), "notes.txt")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "notes" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("got %d pages", len(doc.Pages))
	}
	if doc.Pages[0] != "line one\nline two" {
		t.Errorf("page = %q", doc.Pages[0])
	}
	if len(doc.Outline) != 0 {
		t.Errorf("expected no outline")
	}
}

func TestTextParser_FormFeedPages(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("page one\n\fpage two\n\fpage three\n"), "book.txt")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"page one", "page two", "page three"}
	if len(doc.Pages) != len(want) {
		t.Fatalf("got %d pages: %q", len(doc.Pages), doc.Pages)
	}
	for i, w := range want {
		if doc.Pages[i] != w {
			t.Errorf("page %d = %q, want %q", i, doc.Pages[i], w)
		}
	}
}

func TestTextParser_UppercaseExtensionTitle(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("body text\n"), "REPORT.TXT")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "REPORT" {
		t.Errorf("title = %q, want REPORT", doc.Title)
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := []struct{ in, want string }{
		{"notes.txt", "notes"},
		{"REPORT.TXT", "REPORT"},
		{"paper.Markdown", "paper"},
		{"archive.v2.pdf", "archive.v2"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := titleFromFilename(tt.in); got != tt.want {
			t.Errorf("titleFromFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	for _, name := range []string{"a.txt", "b.md", "c.markdown", "d.html", "e.htm", "f.pdf", "g.docx", "H.PDF"} {
		if !IsSupportedExtension(name) {
			t.Errorf("expected %q supported", name)
		}
	}
	for _, name := range []string{"a.csv", "b.exe", "noext", "c.doc"} {
		if IsSupportedExtension(name) {
			t.Errorf("expected %q unsupported", name)
		}
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		name   string
		wantOK bool
	}{
		{"a.txt", true},
		{"a.md", true},
		{"a.html", true},
		{"a.pdf", true},
		{"a.docx", true},
		{"a.xyz", false},
	}
	for _, tt := range tests {
		p, err := ForFile(tt.name)
		if tt.wantOK && (err != nil || p == nil) {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
		if !tt.wantOK && err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}
