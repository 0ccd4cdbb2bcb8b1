package segment

import (
	"log/slog"

	"github.com/dgallion1/docsplit/internal/document"
)

// Flatten resolves a raw outline tree into a flat, document-ordered
// entry list. Traversal is depth-first preserving sibling order; level
// is nesting depth, 0 for top-level entries. An entry whose destination
// cannot be resolved is skipped and logged, never fatal. An absent or
// fully unresolvable outline yields an empty slice, which callers
// treat as "no TOC available".
func Flatten(nodes []document.OutlineNode, log *slog.Logger) []document.OutlineEntry {
	if log == nil {
		log = slog.Default()
	}
	var entries []document.OutlineEntry
	flattenInto(nodes, 0, &entries, log)
	return entries
}

func flattenInto(nodes []document.OutlineNode, level int, entries *[]document.OutlineEntry, log *slog.Logger) {
	for _, n := range nodes {
		switch node := n.(type) {
		case document.OutlineGroup:
			flattenInto(node.Nodes, level+1, entries, log)
		case document.OutlineLeaf:
			if node.Dest == nil {
				log.Warn("outline entry has no destination, skipping", "title", node.Title)
				continue
			}
			page, err := node.Dest.PageIndex()
			if err != nil {
				log.Warn("could not resolve outline destination, skipping", "title", node.Title, "error", err)
				continue
			}
			*entries = append(*entries, document.OutlineEntry{
				Title: node.Title,
				Page:  page,
				Level: level,
			})
		}
	}
}
