package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "# Heading\nBody of a.")
	writeFile(t, dir, "b.txt", "Plain text of b.")
	writeFile(t, dir, "skip.pdf", "%PDF-1.4 binary goo")
	writeFile(t, dir, filepath.Join("sub", "c.md"), "Nested doc c.")

	docs, err := TextLoader{}.Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}

	// WalkDir visits lexically, so the order is stable.
	wantSources := []string{"a.md", "b.txt", filepath.Join("sub", "c.md")}
	for i, want := range wantSources {
		if got := docs[i].Metadata["source"]; got != want {
			t.Errorf("docs[%d] source = %q, want %q", i, got, want)
		}
	}
	if docs[1].Text != "Plain text of b." {
		t.Errorf("docs[1] text = %q", docs[1].Text)
	}
}

func TestLoad_EmptyDirectory(t *testing.T) {
	docs, err := TextLoader{}.Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %d", len(docs))
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	if _, err := (TextLoader{}).Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
