package segment

import (
	"strings"
	"testing"
)

func TestSplitByHeadings_BasicDocument(t *testing.T) {
	text := "INTRODUCTION\n\nThis is body text about the topic.\n\nMETHODS\n\nWe used method X."

	sections := SplitByHeadings(text)

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "INTRODUCTION" {
		t.Errorf("expected title INTRODUCTION, got %q", sections[0].Title)
	}
	if sections[0].Content != "This is body text about the topic." {
		t.Errorf("unexpected first section content: %q", sections[0].Content)
	}
	if sections[1].Title != "METHODS" {
		t.Errorf("expected title METHODS, got %q", sections[1].Title)
	}
	if sections[1].Content != "We used method X." {
		t.Errorf("unexpected second section content: %q", sections[1].Content)
	}
}

func TestSplitByHeadings_NoHeadingsSingleSection(t *testing.T) {
	text := "just some flowing text.\n\nand another paragraph of it.\n\nand a third one."

	sections := SplitByHeadings(text)

	if len(sections) != 1 {
		t.Fatalf("expected 1 synthesized section, got %d", len(sections))
	}
	if sections[0].Title != "Section 1" {
		t.Errorf("expected synthesized title, got %q", sections[0].Title)
	}
	for _, part := range []string{"just some flowing text.", "and another paragraph of it.", "and a third one."} {
		if !strings.Contains(sections[0].Content, part) {
			t.Errorf("expected content to contain %q", part)
		}
	}
}

func TestSplitByHeadings_PreambleBeforeFirstHeading(t *testing.T) {
	text := "some preamble text before anything.\n\nINTRODUCTION\n\nbody of the introduction."

	sections := SplitByHeadings(text)

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "Section 1" {
		t.Errorf("expected synthesized title for preamble, got %q", sections[0].Title)
	}
	if sections[0].Content != "some preamble text before anything." {
		t.Errorf("unexpected preamble content: %q", sections[0].Content)
	}
	if sections[1].Title != "INTRODUCTION" {
		t.Errorf("expected INTRODUCTION, got %q", sections[1].Title)
	}
}

func TestSplitByHeadings_LongHeadingTruncatedTo100(t *testing.T) {
	heading := "1. " + strings.Repeat("A", 150)
	text := heading + "\n\nbody text."

	sections := SplitByHeadings(text)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if got := len([]rune(sections[0].Title)); got != 100 {
		t.Errorf("expected 100-rune title, got %d", got)
	}
}

func TestSplitByHeadings_EmptyAndWhitespaceParagraphsIgnored(t *testing.T) {
	text := "INTRODUCTION\n\n   \n\nactual body.\n\n\n\n"

	sections := SplitByHeadings(text)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Content != "actual body." {
		t.Errorf("unexpected content: %q", sections[0].Content)
	}
}

func TestSplitByHeadings_TrailingHeadingWithoutBodyDropped(t *testing.T) {
	// A heading with no body after it produces no section.
	text := "INTRODUCTION\n\nbody.\n\nCONCLUSION"

	sections := SplitByHeadings(text)

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != "INTRODUCTION" {
		t.Errorf("expected INTRODUCTION, got %q", sections[0].Title)
	}
}

func TestSplitByHeadings_EmptyInput(t *testing.T) {
	if sections := SplitByHeadings(""); len(sections) != 0 {
		t.Errorf("expected no sections for empty input, got %d", len(sections))
	}
}

func TestSplitByHeadings_NoPageInfo(t *testing.T) {
	sections := SplitByHeadings("TITLE\n\nbody.")
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].HasPages {
		t.Error("heuristic sections must not carry page info")
	}
	if sections[0].Level != 0 {
		t.Errorf("expected level 0, got %d", sections[0].Level)
	}
}
