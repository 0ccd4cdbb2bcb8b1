package parser

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/dgallion1/docsplit/internal/document"
	"github.com/dgallion1/docsplit/internal/segment"
)

func TestBookmarksToOutline_NestedKids(t *testing.T) {
	bookmarks := []pdfcpu.Bookmark{
		{
			Title:    "Introduction",
			PageFrom: 1,
			Kids: []pdfcpu.Bookmark{
				{Title: "Background", PageFrom: 2},
				{Title: "Scope", PageFrom: 4},
			},
		},
		{Title: "Methods", PageFrom: 6},
	}

	entries := segment.Flatten(bookmarksToOutline(bookmarks), nil)
	want := []document.OutlineEntry{
		{Title: "Introduction", Page: 0, Level: 0},
		{Title: "Background", Page: 1, Level: 1},
		{Title: "Scope", Page: 3, Level: 1},
		{Title: "Methods", Page: 5, Level: 0},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries: %+v", len(entries), entries)
	}
	for i, w := range want {
		if entries[i] != w {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], w)
		}
	}
}

func TestBookmarksToOutline_UnresolvedPageSkipped(t *testing.T) {
	bookmarks := []pdfcpu.Bookmark{
		{Title: "Broken", PageFrom: 0},
		{Title: "Valid", PageFrom: 3},
	}

	entries := segment.Flatten(bookmarksToOutline(bookmarks), nil)
	if len(entries) != 1 {
		t.Fatalf("got %d entries: %+v", len(entries), entries)
	}
	if entries[0].Title != "Valid" || entries[0].Page != 2 {
		t.Errorf("entry = %+v", entries[0])
	}
}
