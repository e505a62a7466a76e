package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestListFiltersToEligibleDocuments(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "alice.pdf"), "pdf")
	write(t, filepath.Join(root, "bob.txt"), "text resume")
	write(t, filepath.Join(root, "notes.docx"), "ineligible")
	write(t, filepath.Join(root, ".hidden", "carol.pdf"), "hidden dir")
	write(t, filepath.Join(root, "nested", "dave.PDF"), "case-insensitive ext")

	s := NewStore("", nil, nil)
	docs, err := s.List(context.Background(), root)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3: %+v", len(docs), docs)
	}
	names := map[string]bool{}
	for _, d := range docs {
		names[d.Name] = true
		if !filepath.IsAbs(d.ID) {
			t.Errorf("doc ref %q is not absolute", d.ID)
		}
	}
	for _, want := range []string{"alice.pdf", "bob.txt", "dave.PDF"} {
		if !names[want] {
			t.Errorf("missing %s in %v", want, names)
		}
	}
}

func TestFetchTextReadsPlainText(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "resume.txt")
	write(t, path, "Jane Doe\nGPA 3.9\n")

	s := NewStore("", nil, nil)
	text, err := s.FetchText(context.Background(), path)
	if err != nil {
		t.Fatalf("FetchText: %v", err)
	}
	if text != "Jane Doe\nGPA 3.9" {
		t.Errorf("text = %q", text)
	}
}

func TestFetchTextRejectsUnsupportedType(t *testing.T) {
	s := NewStore("", nil, nil)
	if _, err := s.FetchText(context.Background(), "/tmp/resume.docx"); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}
