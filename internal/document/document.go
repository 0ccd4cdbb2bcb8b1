package document

import "fmt"

// Document is a parsed document: page texts plus an optional raw outline.
type Document struct {
	Title   string        // Document title (from metadata or filename)
	Pages   []string      // Per-page text, 0-based
	Outline []OutlineNode // Raw outline tree; nil when the source has none
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return len(d.Pages) }

// OutlineNode is either a leaf entry or a nested group of sibling nodes.
type OutlineNode interface {
	outlineNode()
}

// OutlineLeaf is a titled outline entry pointing at a page destination.
type OutlineLeaf struct {
	Title string
	Dest  Destination
}

// OutlineGroup holds sibling nodes one level deeper than its position.
type OutlineGroup struct {
	Nodes []OutlineNode
}

func (OutlineLeaf) outlineNode()  {}
func (OutlineGroup) outlineNode() {}

// Destination resolves to a 0-based page index. Resolution may fail for
// malformed or unreachable destinations.
type Destination interface {
	PageIndex() (int, error)
}

// PageDest is a destination already resolved to a 0-based page index.
// A negative page marks an unresolvable destination.
type PageDest struct {
	Page int
}

func (d PageDest) PageIndex() (int, error) {
	if d.Page < 0 {
		return 0, fmt.Errorf("unresolved page destination")
	}
	return d.Page, nil
}

// OutlineEntry is one flattened outline row in document order.
type OutlineEntry struct {
	Title string
	Page  int // 0-based page index
	Level int // Nesting depth, root = 0
}

// Section is a contiguous, titled span of document content.
// Page fields are set only for outline-derived sections: StartPage is
// 1-based, EndPage is the raw 0-based exclusive bound shared with the
// next section's start.
type Section struct {
	Title     string `json:"title"`
	Level     int    `json:"level"`
	Content   string `json:"content"`
	StartPage int    `json:"start_page,omitempty"`
	EndPage   int    `json:"end_page,omitempty"`
	HasPages  bool   `json:"has_pages"`
}
