// Package chunker splits documents into overlapping fixed-size chunks,
// the unit of retrieval.
package chunker

import (
	"github.com/google/uuid"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// DefaultMinChunkSize is the smallest chunk a non-final window may
// produce. Structurally guaranteed by the fixed window: only the final
// chunk can be shorter.
const DefaultMinChunkSize = 50

// Chunker splits document content into fixed-size overlapping chunks.
type Chunker struct {
	chunkSize int
	overlap   int
	minSize   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between consecutive chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// WithMinChunkSize sets the minimum chunk length. The final chunk of a
// document is exempt.
func WithMinChunkSize(minSize int) Option {
	return func(c *Chunker) {
		if minSize > 0 {
			c.minSize = minSize
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
		minSize:   DefaultMinChunkSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	// The window must advance: overlap strictly less than size.
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}
	if c.minSize > c.chunkSize {
		c.minSize = c.chunkSize
	}

	return c
}

// ChunkSize returns the configured window size.
func (c *Chunker) ChunkSize() int { return c.chunkSize }

// Overlap returns the configured overlap.
func (c *Chunker) Overlap() int { return c.overlap }

// Split chunks the document's content into overlapping windows.
// Start offsets are strictly increasing; consecutive chunks share
// exactly the configured overlap, except possibly the final chunk.
// Each chunk inherits the document's tool and source path; the category
// is derived from the source filename. An empty document yields zero
// chunks and no error.
func (c *Chunker) Split(doc domain.Document) []domain.Chunk {
	if doc.Content == "" {
		return nil
	}

	content := doc.Content
	contentLen := len(content)
	category := Classify(doc.SourcePath)

	step := c.chunkSize - c.overlap
	estimated := contentLen/step + 1
	chunks := make([]domain.Chunk, 0, estimated)

	position := 0
	for start := 0; start < contentLen; start += step {
		end := start + c.chunkSize
		if end > contentLen {
			end = contentLen
		}

		chunks = append(chunks, domain.Chunk{
			ID:          uuid.New().String(),
			DocumentID:  doc.ID,
			Tool:        doc.Tool,
			Category:    category,
			Content:     content[start:end],
			Position:    position,
			StartOffset: start,
			SourcePath:  doc.SourcePath,
		})
		position++

		// The window reached the end of the document: stop before
		// emitting a trailing chunk fully contained in this one.
		if end == contentLen {
			break
		}
	}

	return chunks
}
