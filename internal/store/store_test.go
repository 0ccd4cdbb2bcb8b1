package store

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dgallion1/docsplit/internal/document"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNew_RequiresRoot(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Error("expected error for empty root")
	}
}

func TestSectionFilename_Sanitization(t *testing.T) {
	tests := []struct {
		idx   int
		title string
		want  string
	}{
		{1, "Results & Discussion: Part-1!", "01_Results_Discussion_Part_1.txt"},
		{2, "Introduction", "02_Introduction.txt"},
		{12, "a  b - c", "12_a_b_c.txt"},
		{3, strings.Repeat("A", 60), "03_" + strings.Repeat("A", 50) + ".txt"},
		{4, "Résumé & Notes", "04_Résumé_Notes.txt"},
	}
	for _, tt := range tests {
		if got := SectionFilename(tt.idx, tt.title); got != tt.want {
			t.Errorf("SectionFilename(%d, %q) = %q, want %q", tt.idx, tt.title, got, tt.want)
		}
	}
}

func TestWriteSection_FormatAndReadBack(t *testing.T) {
	s := newTestStore(t)

	sec := document.Section{
		Title:     "Methods",
		Content:   "We ran the experiment twice.",
		StartPage: 4,
		EndPage:   7,
		HasPages:  true,
	}
	name, err := s.WriteSection("doc1", 1, sec)
	if err != nil {
		t.Fatal(err)
	}
	if name != "01_Methods.txt" {
		t.Errorf("filename = %q, want 01_Methods.txt", name)
	}

	got, err := s.ReadSectionFile("doc1", 1)
	if err != nil {
		t.Fatal(err)
	}
	want := "Title: Methods\nPages: 4-7\n\n" + strings.Repeat("=", 80) + "\n\nWe ran the experiment twice."
	if got != want {
		t.Errorf("section file = %q, want %q", got, want)
	}
}

func TestWriteSection_NoPagesOmitsPagesLine(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.WriteSection("doc1", 2, document.Section{Title: "Notes", Content: "body"}); err != nil {
		t.Fatal(err)
	}
	got, err := s.ReadSectionFile("doc1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "Pages:") {
		t.Errorf("unexpected Pages line in %q", got)
	}
}

func TestReadSectionFile_Missing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.ReadSectionFile("nope", 1); err == nil {
		t.Error("expected error for missing section")
	}
}

func TestWriteSummary_WritesBothFiles(t *testing.T) {
	s := newTestStore(t)

	if err := s.WriteSummary("doc1", "SUMMARY BODY"); err != nil {
		t.Fatal(err)
	}

	summary, err := s.ReadSummary("doc1")
	if err != nil {
		t.Fatal(err)
	}
	if summary != "SUMMARY BODY" {
		t.Errorf("summary = %q", summary)
	}

	ctx, err := s.ReadContext("doc1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(ctx, "# Document Context for Claude\n\n") {
		t.Errorf("context missing header: %q", ctx)
	}
	if !strings.HasSuffix(ctx, "---\n\nSUMMARY BODY") {
		t.Errorf("context missing summary body: %q", ctx)
	}
}

func TestSectionIndex_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	sections := []document.Section{
		{Title: "One", Level: 0, Content: "first", StartPage: 1, EndPage: 2, HasPages: true},
		{Title: "Two", Level: 1, Content: "second"},
	}
	if err := s.WriteSectionIndex("doc1", sections); err != nil {
		t.Fatal(err)
	}

	got, err := s.ReadSections("doc1")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, sections) {
		t.Errorf("got %+v, want %+v", got, sections)
	}
}

func TestListDocuments_SortedDirsOnly(t *testing.T) {
	s := newTestStore(t)

	if err := s.WriteSummary("beta", "b"); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteSummary("alpha", "a"); err != nil {
		t.Fatal(err)
	}
	// Stray file at the root is not a document.
	if err := os.WriteFile(filepath.Join(s.root, "stray.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ids, err := s.ListDocuments()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ids, []string{"alpha", "beta"}) {
		t.Errorf("ids = %v", ids)
	}
}

func TestDelete_RemovesArtifacts(t *testing.T) {
	s := newTestStore(t)

	if err := s.WriteSummary("doc1", "body"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("doc1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ReadSummary("doc1"); err == nil {
		t.Error("expected error reading deleted document")
	}
	// Deleting an unknown document is not an error.
	if err := s.Delete("doc1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
