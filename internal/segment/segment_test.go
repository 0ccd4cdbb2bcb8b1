package segment

import (
	"testing"

	"github.com/dgallion1/docsplit/internal/document"
)

func TestSplit_UsesOutlineWhenPresent(t *testing.T) {
	doc := &document.Document{
		Title: "Doc",
		Pages: []string{"intro text", "more intro", "methods text"},
		Outline: []document.OutlineNode{
			document.OutlineLeaf{Title: "Intro", Dest: document.PageDest{Page: 0}},
			document.OutlineLeaf{Title: "Methods", Dest: document.PageDest{Page: 2}},
		},
	}

	sections, strategy, err := Split(doc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strategy != StrategyOutline {
		t.Fatalf("expected outline strategy, got %s", strategy)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "Intro" || sections[1].Title != "Methods" {
		t.Errorf("unexpected titles: %q, %q", sections[0].Title, sections[1].Title)
	}
}

func TestSplit_FallsBackWhenOutlineAbsent(t *testing.T) {
	doc := &document.Document{
		Title: "Doc",
		Pages: []string{"INTRODUCTION\n\nThis is body text about the topic.", "METHODS\n\nWe used method X."},
	}

	sections, strategy, err := Split(doc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strategy != StrategyHeuristic {
		t.Fatalf("expected heuristic strategy, got %s", strategy)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "INTRODUCTION" || sections[1].Title != "METHODS" {
		t.Errorf("unexpected titles: %q, %q", sections[0].Title, sections[1].Title)
	}
}

func TestSplit_FallsBackWhenOutlineResolvesEmpty(t *testing.T) {
	doc := &document.Document{
		Title: "Doc",
		Pages: []string{"TITLE\n\nbody paragraph."},
		Outline: []document.OutlineNode{
			document.OutlineLeaf{Title: "Broken", Dest: document.PageDest{Page: -1}},
		},
	}

	_, strategy, err := Split(doc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strategy != StrategyHeuristic {
		t.Errorf("expected heuristic fallback for unresolvable outline, got %s", strategy)
	}
}

func TestSplit_ZeroPagesIsAnError(t *testing.T) {
	if _, _, err := Split(&document.Document{Title: "Empty"}, nil); err == nil {
		t.Error("expected error for document with no pages")
	}
	if _, _, err := Split(nil, nil); err == nil {
		t.Error("expected error for nil document")
	}
}
