package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
)

func testDoc(content string) domain.Document {
	return domain.Document{
		ID:         "doc-1",
		Tool:       domain.ToolLovable,
		SourcePath: "data/lovable/getting_started.md",
		Content:    content,
	}
}

func TestSplitEmptyDocument(t *testing.T) {
	c := New()
	chunks := c.Split(testDoc(""))
	assert.Empty(t, chunks, "empty document yields zero chunks, not an error")
}

func TestSplitShortDocument(t *testing.T) {
	c := New(WithChunkSize(100), WithOverlap(20))
	chunks := c.Split(testDoc("short content"))

	require.Len(t, chunks, 1)
	assert.Equal(t, "short content", chunks[0].Content)
	assert.Equal(t, 0, chunks[0].StartOffset)
	assert.Equal(t, 0, chunks[0].Position)
}

func TestSplitCoverageAndOverlap(t *testing.T) {
	// For all window/overlap configurations with window > overlap >= 0,
	// chunks cover the document with no gaps and consecutive chunks
	// share exactly `overlap` characters.
	configs := []struct {
		size    int
		overlap int
	}{
		{size: 10, overlap: 0},
		{size: 10, overlap: 3},
		{size: 50, overlap: 10},
		{size: 7, overlap: 6},
	}

	content := strings.Repeat("abcdefghij", 13) // 130 chars
	for _, cfg := range configs {
		c := New(WithChunkSize(cfg.size), WithOverlap(cfg.overlap), WithMinChunkSize(1))
		chunks := c.Split(testDoc(content))
		require.NotEmpty(t, chunks)

		assert.Equal(t, 0, chunks[0].StartOffset)
		for i := range chunks {
			// Chunk content matches its claimed window.
			start := chunks[i].StartOffset
			assert.Equal(t, content[start:start+len(chunks[i].Content)], chunks[i].Content)
			assert.Equal(t, i, chunks[i].Position)

			if i == 0 {
				continue
			}
			prevEnd := chunks[i-1].StartOffset + len(chunks[i-1].Content)
			// Start offsets strictly increase.
			assert.Greater(t, chunks[i].StartOffset, chunks[i-1].StartOffset)
			// No gap between consecutive chunks.
			assert.GreaterOrEqual(t, prevEnd, chunks[i].StartOffset)
			// Shared region is exactly the configured overlap.
			assert.Equal(t, cfg.overlap, prevEnd-chunks[i].StartOffset,
				"size=%d overlap=%d chunk=%d", cfg.size, cfg.overlap, i)
		}

		// Final chunk reaches the end of the document.
		last := chunks[len(chunks)-1]
		assert.Equal(t, len(content), last.StartOffset+len(last.Content))

		// Only the final chunk may be shorter than the window.
		for i := 0; i < len(chunks)-1; i++ {
			assert.Len(t, chunks[i].Content, cfg.size)
		}
	}
}

func TestSplitInheritsDocumentMetadata(t *testing.T) {
	c := New(WithChunkSize(20), WithOverlap(5))
	doc := testDoc(strings.Repeat("x", 45))
	chunks := c.Split(doc)

	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		assert.Equal(t, doc.ID, chunk.DocumentID)
		assert.Equal(t, doc.Tool, chunk.Tool)
		assert.Equal(t, doc.SourcePath, chunk.SourcePath)
		assert.NotEmpty(t, chunk.ID)
	}
}

func TestNewClampsInvalidOverlap(t *testing.T) {
	// Overlap >= size would stall the window; the constructor clamps it.
	c := New(WithChunkSize(100), WithOverlap(100))
	assert.Equal(t, 25, c.Overlap())
	assert.Equal(t, 100, c.ChunkSize())
}
