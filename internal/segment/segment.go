// Package segment turns a parsed document into an ordered list of
// titled sections. When the document carries an outline the sections
// follow it page-for-page; otherwise a heading heuristic partitions the
// flowing text.
package segment

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgallion1/docsplit/internal/document"
)

// Strategy identifies which segmentation path produced the sections.
type Strategy string

const (
	StrategyOutline   Strategy = "outline"
	StrategyHeuristic Strategy = "heuristic"
)

// Split segments a document. The outline path is tried first; when the
// outline is absent or flattens to zero usable entries, the heading
// heuristic takes over. A document with zero pages is a caller error.
func Split(doc *document.Document, log *slog.Logger) ([]document.Section, Strategy, error) {
	if doc == nil || len(doc.Pages) == 0 {
		return nil, "", fmt.Errorf("document has no pages")
	}
	if log == nil {
		log = slog.Default()
	}

	entries := Flatten(doc.Outline, log)
	if len(entries) > 0 {
		log.Info("segmenting by outline", "entries", len(entries))
		return SplitByOutline(entries, doc.Pages), StrategyOutline, nil
	}

	log.Info("no outline available, falling back to heading detection")
	fullText := strings.Join(doc.Pages, "\n\n")
	return SplitByHeadings(fullText), StrategyHeuristic, nil
}
