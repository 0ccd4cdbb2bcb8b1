package segment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dgallion1/docsplit/internal/document"
)

var paragraphBoundary = regexp.MustCompile(`\n\s*\n+`)

// SplitByHeadings partitions flowing text into sections by detecting
// heading-like paragraphs. Body paragraphs accumulate under the most
// recent heading; content before the first heading is kept under a
// synthesized "Section N" title rather than dropped. Sections produced
// here carry no page information and level 0.
func SplitByHeadings(fullText string) []document.Section {
	paragraphs := paragraphBoundary.Split(fullText, -1)

	var sections []document.Section
	sectionNum := 1
	var currentTitle string
	var currentBody []string

	flush := func() {
		if len(currentBody) == 0 {
			return
		}
		title := currentTitle
		if title == "" {
			title = fmt.Sprintf("Section %d", sectionNum)
		}
		sections = append(sections, document.Section{
			Title:   title,
			Level:   0,
			Content: strings.TrimSpace(strings.Join(currentBody, "\n\n")),
		})
		sectionNum++
		currentBody = nil
	}

	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if IsHeading(para) {
			flush()
			currentTitle = truncateRunes(para, 100)
		} else {
			currentBody = append(currentBody, para)
		}
	}
	flush()

	return sections
}

// truncateRunes limits s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
