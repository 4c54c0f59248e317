package splitter

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/halvard/docvec/pkg/docvec"
)

// DefaultSeparators is tried in priority order, from the largest
// structural unit down. The empty string means "split anywhere" and
// guarantees the recursion terminates.
var DefaultSeparators = []string{"\n\n", "\n", " ", ""}

// Splitter cuts text into segments of at most ChunkSize bytes, with
// consecutive segments sharing a ChunkOverlap-character region. The
// size bound is measured in bytes and is soft: a single unbreakable
// piece longer than ChunkSize is emitted as-is rather than truncated.
// The overlap is counted in characters and never cuts a rune apart.
type Splitter struct {
	ChunkSize    int
	ChunkOverlap int
	Separators   []string // nil means DefaultSeparators
}

// New returns a Splitter using the default separator hierarchy.
func New(chunkSize, chunkOverlap int) *Splitter {
	return &Splitter{
		ChunkSize:    chunkSize,
		ChunkOverlap: chunkOverlap,
		Separators:   DefaultSeparators,
	}
}

// Split breaks text into overlapping segments. The output is fully
// determined by the input and the splitter's parameters.
func (s *Splitter) Split(text string) []string {
	if text == "" {
		return nil
	}
	seps := s.Separators
	if seps == nil {
		seps = DefaultSeparators
	}
	return s.merge(s.splitRecursive(text, seps))
}

// splitRecursive reduces text to elementary pieces no longer than
// ChunkSize where possible. It splits on the first separator and
// re-splits any still-oversized piece with the remaining, finer ones.
// Separators are retained at the end of each piece so concatenating
// the pieces reconstructs the input exactly.
func (s *Splitter) splitRecursive(text string, seps []string) []string {
	if len(text) <= s.ChunkSize {
		return []string{text}
	}
	if len(seps) == 0 {
		// Separators exhausted: the piece stays oversized.
		return []string{text}
	}

	sep := seps[0]
	if sep == "" {
		return splitRunes(text)
	}

	var pieces []string
	for _, part := range strings.SplitAfter(text, sep) {
		if part == "" {
			continue
		}
		if len(part) > s.ChunkSize {
			pieces = append(pieces, s.splitRecursive(part, seps[1:])...)
		} else {
			pieces = append(pieces, part)
		}
	}
	return pieces
}

// merge greedily packs elementary pieces into segments of at most
// ChunkSize characters. After a segment is closed, the next one starts
// with the trailing ChunkOverlap characters of it, preserving local
// context across the cut.
func (s *Splitter) merge(pieces []string) []string {
	var segments []string
	cur := "" // segment under construction, beginning with the carried overlap
	base := 0 // length of the carried overlap prefix in cur

	for _, p := range pieces {
		if p == "" {
			continue
		}
		if len(cur) > base && len(cur)+len(p) > s.ChunkSize {
			segments = append(segments, cur)
			cur = tail(cur, s.ChunkOverlap)
			base = len(cur)
		}
		cur += p
	}
	if len(cur) > base {
		segments = append(segments, cur)
	}
	return segments
}

// SplitDocuments applies Split to each document and wraps the results
// as segments with fresh IDs and the document's metadata.
func (s *Splitter) SplitDocuments(docs []docvec.Document) []docvec.Segment {
	var segments []docvec.Segment
	for _, doc := range docs {
		for _, text := range s.Split(doc.Text) {
			segments = append(segments, docvec.Segment{
				ID:       uuid.NewString(),
				Text:     text,
				Metadata: doc.Metadata,
			})
		}
	}
	return segments
}

// FilterSegments drops segments whose trimmed text is shorter than
// minLength. Order is preserved and nothing is mutated.
func FilterSegments(segments []docvec.Segment, minLength int) []docvec.Segment {
	kept := make([]docvec.Segment, 0, len(segments))
	for _, seg := range segments {
		if len(strings.TrimSpace(seg.Text)) < minLength {
			continue
		}
		kept = append(kept, seg)
	}
	return kept
}

// splitRunes splits text into individual characters, keeping multi-byte
// runes intact.
func splitRunes(text string) []string {
	pieces := make([]string, 0, len(text))
	for _, r := range text {
		pieces = append(pieces, string(r))
	}
	return pieces
}

// tail returns the last n characters of s, or all of s when shorter.
// It counts runes from the end so the cut never lands inside a
// multi-byte character.
func tail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	idx := len(s)
	for i := 0; i < n; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:idx])
		if size == 0 {
			return s
		}
		idx -= size
	}
	return s[idx:]
}
