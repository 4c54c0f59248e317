package docvec

// Document is a raw input document as produced by a loader, before splitting.
type Document struct {
	Text     string            // Full text content
	Metadata map[string]string // Source attributes, at least "source" (file path)
}

// Segment is a bounded span of text cut from a document. It is immutable
// once created: the metadata is inherited from the originating document
// and never modified afterwards.
type Segment struct {
	ID       string            // Unique identifier assigned at chunking time
	Text     string            // The chunk text
	Metadata map[string]string // Inherited verbatim from the document
}

// Record is the persisted embedding store. Docs[i], Metadatas[i] and
// Embeddings[i] all describe the same segment; keeping the three slices
// index-aligned is the record's central invariant.
type Record struct {
	Docs       []string            // Segment texts
	Metadatas  []map[string]string // Corresponding metadata (same order as Docs)
	Embeddings [][]float32         // Corresponding vectors (same order as Docs)
	Model      string              // Model name/version used
	Dimension  int                 // Embedding vector dimension
}
