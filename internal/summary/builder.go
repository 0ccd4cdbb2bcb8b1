// Package summary renders the document-structure summary consumed by
// context-limited LLM sessions. The markdown-style layout is a contract:
// consumers locate blocks by these exact headers.
package summary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/docsplit/internal/document"
)

// DefaultKeySentences is the number of key sentences shown per section.
const DefaultKeySentences = 3

// previewChars caps the first-paragraph preview length.
const previewChars = 300

// Builder renders a DocumentSummary from a finalized section list.
type Builder struct {
	maxKeySentences int
}

// NewBuilder validates the key-sentence budget. A non-positive value is
// a caller error, not a document-data issue.
func NewBuilder(maxKeySentences int) (*Builder, error) {
	if maxKeySentences <= 0 {
		return nil, fmt.Errorf("max key sentences must be positive, got %d", maxKeySentences)
	}
	return &Builder{maxKeySentences: maxKeySentences}, nil
}

// Render produces the full summary document. It is a pure function of
// its inputs: the same sections and page count always yield the same
// bytes.
func (b *Builder) Render(sections []document.Section, totalPages int) string {
	var parts []string

	parts = append(parts, "# DOCUMENT STRUCTURE SUMMARY")
	parts = append(parts, fmt.Sprintf("Total Sections: %d", len(sections)))
	parts = append(parts, fmt.Sprintf("Total Pages: %d\n", totalPages))

	parts = append(parts, "## TABLE OF CONTENTS")
	for i, section := range sections {
		indent := strings.Repeat("  ", section.Level)
		pages := ""
		if section.HasPages {
			pages = fmt.Sprintf(" [p.%d-%d]", section.StartPage, section.EndPage)
		}
		parts = append(parts, fmt.Sprintf("%s%d. %s%s", indent, i+1, section.Title, pages))
	}

	parts = append(parts, "\n## SECTION SUMMARIES\n")

	for i, section := range sections {
		parts = append(parts, fmt.Sprintf("### Section %d: %s", i+1, section.Title))

		if section.HasPages {
			parts = append(parts, fmt.Sprintf("**Location:** Pages %d-%d", section.StartPage, section.EndPage))
		}

		wordCount := len(strings.Fields(section.Content))
		charCount := utf8.RuneCountInString(section.Content)
		parts = append(parts, fmt.Sprintf("**Length:** %d words, %d characters", wordCount, charCount))

		if preview := firstParagraphPreview(section.Content); preview != "" {
			parts = append(parts, fmt.Sprintf("**Preview:** %s", preview))
		}

		if key := KeySentences(section.Content, b.maxKeySentences); len(key) > 0 {
			parts = append(parts, "**Key Points:**")
			for _, sentence := range key {
				parts = append(parts, fmt.Sprintf("- %s", sentence))
			}
		}

		parts = append(parts, "") // blank line between sections
	}

	parts = append(parts, "\n## HOW TO USE THIS DOCUMENT")
	parts = append(parts, "This summary provides the structure and overview of the full document.")
	parts = append(parts, "Each section has been extracted to a separate file in the output directory.")
	parts = append(parts, "To analyze specific sections in detail, refer to the individual section files.")
	parts = append(parts, "Section numbers correspond to the filenames (e.g., Section 1 -> 01_*.txt)")

	return strings.Join(parts, "\n")
}

// firstParagraphPreview returns the first non-empty paragraph truncated
// to previewChars runes, with an ellipsis marker when cut.
func firstParagraphPreview(content string) string {
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		runes := []rune(para)
		if len(runes) > previewChars {
			return string(runes[:previewChars]) + "..."
		}
		return para
	}
	return ""
}
