// Package store persists the chunk blob and the embedding record as
// single gob files. Writes are full rebuilds: an existing blob at the
// target path is overwritten, never merged. Concurrent runs against the
// same path race on the final rename and the last writer wins; the
// pipeline is not designed for concurrent writers.
package store

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/halvard/docvec/pkg/docvec"
)

var (
	// ErrMissingInput means the expected blob does not exist; the
	// upstream pipeline stage has not been run.
	ErrMissingInput = errors.New("input file not found")

	// ErrEmptyInput means the blob exists but is zero bytes, signaling
	// a broken upstream step.
	ErrEmptyInput = errors.New("input file is empty")

	// ErrCorruptInput means the blob exists and has content but cannot
	// be decoded.
	ErrCorruptInput = errors.New("input file is corrupted")
)

// SaveSegments writes the chunk blob produced by the chunking step.
func SaveSegments(path string, segments []docvec.Segment) error {
	return writeBlob(path, segments)
}

// SaveRecord writes the final embedding record.
func SaveRecord(path string, record *docvec.Record) error {
	return writeBlob(path, record)
}

// LoadSegments reads the chunk blob back. Three checks run in order,
// each failing with its own sentinel: existence, emptiness, decode.
// The cheap structural checks run before the fallible decode so the
// caller gets the most specific diagnosis available.
func LoadSegments(path string) ([]docvec.Segment, error) {
	file, err := openBlob(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var segments []docvec.Segment
	if err := gob.NewDecoder(file).Decode(&segments); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptInput, path, err)
	}
	return segments, nil
}

// LoadRecord reads an embedding record with the same three-check
// protocol as LoadSegments.
func LoadRecord(path string) (*docvec.Record, error) {
	file, err := openBlob(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var record docvec.Record
	if err := gob.NewDecoder(file).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptInput, path, err)
	}
	return &record, nil
}

func openBlob(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (run the previous pipeline step first)", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}
	return os.Open(path)
}

// writeBlob encodes v to a temp file and renames it into place, so a
// crash mid-write never leaves a torn blob at path.
func writeBlob(path string, v any) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}
	if err := gob.NewEncoder(file).Encode(v); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp, err)
	}

	return os.Rename(tmp, path)
}
