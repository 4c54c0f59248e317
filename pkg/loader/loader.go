// Package loader supplies raw documents to the chunking step. It reads
// plain-text and markdown files; PDF extraction is expected to happen
// upstream, feeding the extracted text into the same directory.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/halvard/docvec/pkg/docvec"
)

// Loader is the injected document-loading capability consumed by the
// chunking step.
type Loader interface {
	Load(dir string) ([]docvec.Document, error)
}

// TextLoader reads .txt and .md files from a directory tree.
type TextLoader struct{}

// Load walks dir and returns one document per text file, tagged with
// its path relative to dir. The walk order is lexical, so the output
// is deterministic for a given directory.
func (TextLoader) Load(dir string) ([]docvec.Document, error) {
	var docs []docvec.Document

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".txt" && ext != ".md" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}

		docs = append(docs, docvec.Document{
			Text:     string(content),
			Metadata: map[string]string{"source": relPath},
		})
		return nil
	})

	return docs, err
}
