package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/halvard/docvec/pkg/docvec"
)

func sampleSegments() []docvec.Segment {
	return []docvec.Segment{
		{ID: "1", Text: "first chunk", Metadata: map[string]string{"source": "a.txt"}},
		{ID: "2", Text: "second chunk", Metadata: map[string]string{"source": "b.txt"}},
	}
}

func TestLoadSegments_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.gob")

	_, err := LoadSegments(path)
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("LoadSegments() error = %v, want ErrMissingInput", err)
	}
}

func TestLoadSegments_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.gob")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadSegments(path)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("LoadSegments() error = %v, want ErrEmptyInput", err)
	}
}

func TestLoadSegments_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.gob")
	if err := os.WriteFile(path, []byte("not a gob blob"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadSegments(path)
	if !errors.Is(err, ErrCorruptInput) {
		t.Fatalf("LoadSegments() error = %v, want ErrCorruptInput", err)
	}
}

func TestSegmentsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.gob")
	want := sampleSegments()

	if err := SaveSegments(path, want); err != nil {
		t.Fatalf("SaveSegments() error: %v", err)
	}
	got, err := LoadSegments(path)
	if err != nil {
		t.Fatalf("LoadSegments() error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestSaveSegments_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chunks.gob")

	if err := SaveSegments(path, sampleSegments()); err != nil {
		t.Fatal(err)
	}
	second := []docvec.Segment{{ID: "9", Text: "rebuilt", Metadata: map[string]string{"source": "c.txt"}}}
	if err := SaveSegments(path, second); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSegments(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, second) {
		t.Errorf("expected the second save to fully replace the first, got %v", got)
	}
}

func TestRecordRoundTrip_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "embeddings", "embeddings.gob")
	want := &docvec.Record{
		Docs:       []string{"hello world"},
		Metadatas:  []map[string]string{{"source": "a.txt"}},
		Embeddings: [][]float32{{0.1, 0.2}},
		Model:      "mock-v1",
		Dimension:  2,
	}

	if err := SaveRecord(path, want); err != nil {
		t.Fatalf("SaveRecord() error: %v", err)
	}
	got, err := LoadRecord(path)
	if err != nil {
		t.Fatalf("LoadRecord() error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %v\nwant %v", got, want)
	}
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chunks.gob")

	if err := SaveSegments(path, sampleSegments()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file still present after save")
	}
}
