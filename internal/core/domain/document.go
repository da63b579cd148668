package domain

import "time"

// Document represents a loaded documentation file for one tool.
// Documents exist only between loading and chunking; they are not
// persisted and are discarded once chunks are produced.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Tool is the tool whose documentation folder produced this document.
	Tool SupportedTool

	// SourcePath is the original file path on disk.
	SourcePath string

	// Title is the human-readable title, extracted from the first
	// heading or the filename.
	Title string

	// Content is the full text content after markdown normalisation.
	Content string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// LoadedAt is when the document was read from disk.
	LoadedAt time.Time
}

// Chunk is the unit of retrieval: a bounded-length slice of a source
// document with attached metadata. Chunks are immutable after creation
// and deleted only on full index rebuild.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Tool is inherited from the parent document and used as the
	// retrieval filter. Every chunk's tool must reference a profile
	// present in the registry.
	Tool SupportedTool

	// Category classifies the source document by filename keywords.
	Category Category

	// Content is the text content of this chunk.
	Content string

	// Position is the ordinal position within the document.
	Position int

	// StartOffset is the chunk's starting byte offset in the document,
	// strictly increasing across a document's chunks.
	StartOffset int

	// Embedding is the vector representation for similarity search.
	Embedding []float32

	// SourcePath is inherited from the parent document.
	SourcePath string
}

// Category classifies documentation by subject matter.
type Category string

// Documentation categories.
const (
	CategoryPrompting   Category = "prompting"
	CategoryUIDesign    Category = "ui_design"
	CategoryIntegration Category = "integration"
	CategoryDebugging   Category = "debugging"
	CategoryGeneral     Category = "general"
)

// ScoredChunk pairs a retrieved chunk with its similarity score.
type ScoredChunk struct {
	// Chunk is the retrieved chunk.
	Chunk Chunk

	// Score is the cosine similarity (0-1), descending across a result set.
	Score float64
}
