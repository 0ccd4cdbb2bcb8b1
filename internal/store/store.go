// Package store persists segmentation artifacts to the output
// directory. Filenames are a contract: downstream tooling globs the
// two-digit section prefixes and loads the fixed summary and context
// files by name.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/dgallion1/docsplit/internal/document"
)

const (
	// SummaryFilename holds the rendered document summary.
	SummaryFilename = "00_DOCUMENT_SUMMARY.txt"
	// ContextFilename is the upload-first context file for Claude sessions.
	ContextFilename = "00_CLAUDE_CONTEXT.md"
	// SectionsFilename holds the machine-readable section records.
	SectionsFilename = "sections.json"
)

// Store writes and reads per-document artifact directories.
type Store struct {
	root string
}

func New(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) docDir(docID string) string {
	return filepath.Join(s.root, docID)
}

// WriteSection writes the section file for 1-based position idx and
// returns the filename used.
func (s *Store) WriteSection(docID string, idx int, sec document.Section) (string, error) {
	name := SectionFilename(idx, sec.Title)

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("Title: %s\n", sec.Title))
	if sec.HasPages {
		buf.WriteString(fmt.Sprintf("Pages: %d-%d\n", sec.StartPage, sec.EndPage))
	}
	buf.WriteString("\n" + strings.Repeat("=", 80) + "\n\n")
	buf.WriteString(sec.Content)

	if err := s.writeFile(docID, name, []byte(buf.String())); err != nil {
		return "", err
	}
	return name, nil
}

// WriteSummary writes the summary file and the Claude context file
// derived from it.
func (s *Store) WriteSummary(docID, summary string) error {
	if err := s.writeFile(docID, SummaryFilename, []byte(summary)); err != nil {
		return err
	}

	var ctx strings.Builder
	ctx.WriteString("# Document Context for Claude\n\n")
	ctx.WriteString("**Instructions:** Upload this file first to give Claude context about the document structure, ")
	ctx.WriteString("then upload specific section files for detailed analysis.\n\n")
	ctx.WriteString("---\n\n")
	ctx.WriteString(summary)
	return s.writeFile(docID, ContextFilename, []byte(ctx.String()))
}

// WriteSectionIndex persists the ordered section records as JSON.
func (s *Store) WriteSectionIndex(docID string, sections []document.Section) error {
	data, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sections: %w", err)
	}
	return s.writeFile(docID, SectionsFilename, data)
}

func (s *Store) writeFile(docID, name string, data []byte) error {
	dir := s.docDir(docID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create document directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// ReadSummary returns the stored summary for a document.
func (s *Store) ReadSummary(docID string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.docDir(docID), SummaryFilename))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadContext returns the stored Claude context file.
func (s *Store) ReadContext(docID string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.docDir(docID), ContextFilename))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadSections returns the ordered section records.
func (s *Store) ReadSections(docID string) ([]document.Section, error) {
	data, err := os.ReadFile(filepath.Join(s.docDir(docID), SectionsFilename))
	if err != nil {
		return nil, err
	}
	var sections []document.Section
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, fmt.Errorf("decode sections: %w", err)
	}
	return sections, nil
}

// ReadSectionFile returns the raw text of the section at 1-based
// position idx.
func (s *Store) ReadSectionFile(docID string, idx int) (string, error) {
	matches, err := filepath.Glob(filepath.Join(s.docDir(docID), fmt.Sprintf("%02d_*.txt", idx)))
	if err != nil || len(matches) == 0 {
		return "", fmt.Errorf("section %d not found", idx)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ListDocuments returns the IDs of documents with stored artifacts,
// sorted for stable output.
func (s *Store) ListDocuments() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read output directory: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes all artifacts for a document.
func (s *Store) Delete(docID string) error {
	return os.RemoveAll(s.docDir(docID))
}

var (
	// Word characters here are Unicode letters and digits, so accented
	// titles keep their letters in the filename.
	nonWordChars  = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	separatorRuns = regexp.MustCompile(`[-\s]+`)
)

// SectionFilename builds the contract filename for a section: two-digit
// 1-based index, underscore, sanitized title, .txt.
func SectionFilename(idx int, title string) string {
	return fmt.Sprintf("%02d_%s.txt", idx, sanitizeTitle(title))
}

// sanitizeTitle strips characters other than word characters, spaces
// and hyphens, truncates to 50 characters, then collapses hyphen/space
// runs into single underscores.
func sanitizeTitle(title string) string {
	stripped := nonWordChars.ReplaceAllString(title, "")
	runes := []rune(stripped)
	if len(runes) > 50 {
		stripped = string(runes[:50])
	}
	return separatorRuns.ReplaceAllString(stripped, "_")
}
