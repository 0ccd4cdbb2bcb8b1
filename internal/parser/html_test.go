package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_ExtractsParagraphs(t *testing.T) {
	input := `<html>
<head><title>Annual Report</title><style>p { color: red }</style></head>
<body>
<nav><p>skip me</p></nav>
<h1>OVERVIEW</h1>
<p>First paragraph of the report.</p>
<p>Second <em>paragraph</em> here.</p>
<script>console.log("skip")</script>
</body>
</html>`

	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader(input), "report.html")
	if err != nil {
		t.Fatal(err)
	}

	if doc.Title != "Annual Report" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Pages) != 1 {
		t.Fatalf("got %d pages", len(doc.Pages))
	}

	want := "OVERVIEW\n\nFirst paragraph of the report.\n\nSecond paragraph here."
	if doc.Pages[0] != want {
		t.Errorf("page = %q, want %q", doc.Pages[0], want)
	}
	if len(doc.Outline) != 0 {
		t.Errorf("expected no outline for html")
	}
}

func TestHTMLParser_FallsBackToFilenameTitle(t *testing.T) {
	p := &HTMLParser{}
	doc, err := p.Parse(strings.NewReader("<p>just text</p>"), "page.html")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "page" {
		t.Errorf("title = %q", doc.Title)
	}
}
