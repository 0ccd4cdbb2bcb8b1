package segment

import (
	"strings"

	"github.com/dgallion1/docsplit/internal/document"
)

// SplitByOutline builds one section per outline entry. Each section
// spans pages [entry.Page, nextEntry.Page), the last one running to the
// end of the document. Page indices beyond the document are skipped
// rather than erroring, and duplicate or out-of-order outline pages are
// allowed to produce empty content.
func SplitByOutline(entries []document.OutlineEntry, pages []string) []document.Section {
	sections := make([]document.Section, 0, len(entries))

	for i, entry := range entries {
		startPage := entry.Page
		endPage := len(pages)
		if i+1 < len(entries) {
			endPage = entries[i+1].Page
		}

		var content []string
		for p := startPage; p < endPage; p++ {
			if p >= 0 && p < len(pages) {
				content = append(content, pages[p])
			}
		}

		sections = append(sections, document.Section{
			Title:     entry.Title,
			Level:     entry.Level,
			Content:   strings.TrimSpace(strings.Join(content, "\n\n")),
			StartPage: startPage + 1, // human-readable page numbers
			EndPage:   endPage,
			HasPages:  true,
		})
	}

	return sections
}
