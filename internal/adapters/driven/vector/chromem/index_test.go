package chromem

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driven"
)

// unit returns a normalised 3-dimensional vector.
func unit(x, y, z float32) []float32 {
	n := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	return []float32{x / n, y / n, z / n}
}

func testChunks() []domain.Chunk {
	return []domain.Chunk{
		{
			ID:         "c1",
			DocumentID: "d1",
			Tool:       domain.ToolLovable,
			Category:   domain.CategoryPrompting,
			SourcePath: "lovable/prompting.md",
			Content:    "Use the knowledge base",
			Position:   0,
			Embedding:  unit(1, 0, 0),
		},
		{
			ID:          "c2",
			DocumentID:  "d1",
			Tool:        domain.ToolLovable,
			Category:    domain.CategoryPrompting,
			SourcePath:  "lovable/prompting.md",
			Content:     "Keep prompts incremental",
			Position:    1,
			StartOffset: 800,
			Embedding:   unit(0.9, 0.1, 0),
		},
		{
			ID:         "c3",
			DocumentID: "d2",
			Tool:       domain.ToolBolt,
			Category:   domain.CategoryGeneral,
			SourcePath: "bolt_docs/general.md",
			Content:    "WebContainer runs in the browser",
			Position:   0,
			Embedding:  unit(0, 1, 0),
		},
	}
}

func TestQueryMissingIndex(t *testing.T) {
	x := New(filepath.Join(t.TempDir(), "never-built"))

	got, err := x.Query(context.Background(), unit(1, 0, 0), 5, driven.QueryOptions{})
	require.NoError(t, err)
	assert.Empty(t, got)

	count, err := x.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRebuildAndQuery(t *testing.T) {
	x := New(filepath.Join(t.TempDir(), "index"))
	ctx := context.Background()

	require.NoError(t, x.Rebuild(ctx, testChunks()))

	count, err := x.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	got, err := x.Query(ctx, unit(1, 0, 0), 2, driven.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Nearest first.
	assert.Equal(t, "c1", got[0].Chunk.ID)
	assert.Equal(t, "c2", got[1].Chunk.ID)
	assert.Greater(t, got[0].Score, got[1].Score)

	// Metadata survives the round trip.
	assert.Equal(t, domain.ToolLovable, got[1].Chunk.Tool)
	assert.Equal(t, domain.CategoryPrompting, got[1].Chunk.Category)
	assert.Equal(t, "lovable/prompting.md", got[1].Chunk.SourcePath)
	assert.Equal(t, 1, got[1].Chunk.Position)
	assert.Equal(t, 800, got[1].Chunk.StartOffset)
	assert.Equal(t, "d1", got[1].Chunk.DocumentID)
}

func TestQueryToolFilter(t *testing.T) {
	x := New(filepath.Join(t.TempDir(), "index"))
	ctx := context.Background()
	require.NoError(t, x.Rebuild(ctx, testChunks()))

	got, err := x.Query(ctx, unit(1, 0, 0), 5, driven.QueryOptions{Tool: "bolt"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c3", got[0].Chunk.ID)
}

func TestQueryThresholdDropsWeakMatches(t *testing.T) {
	x := New(filepath.Join(t.TempDir(), "index"))
	ctx := context.Background()
	require.NoError(t, x.Rebuild(ctx, testChunks()))

	// Orthogonal to everything lovable: best similarity near zero.
	got, err := x.Query(ctx, unit(0, 0, 1), 5, driven.QueryOptions{Threshold: 0.3})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRebuildReplacesOldIndex(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "index")
	x := New(dir)
	ctx := context.Background()

	require.NoError(t, x.Rebuild(ctx, testChunks()))

	require.NoError(t, x.Rebuild(ctx, testChunks()[:1]))
	count, err := x.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestQueryPersistedIndexAfterReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "index")
	ctx := context.Background()

	first := New(dir)
	require.NoError(t, first.Rebuild(ctx, testChunks()))
	require.NoError(t, first.Close())

	// Fresh handle over the same directory.
	second := New(dir)
	got, err := second.Query(ctx, unit(0, 1, 0), 1, driven.QueryOptions{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c3", got[0].Chunk.ID)
}

func TestRebuildRejectsMissingEmbedding(t *testing.T) {
	x := New(filepath.Join(t.TempDir(), "index"))
	chunks := testChunks()
	chunks[1].Embedding = nil

	err := x.Rebuild(context.Background(), chunks)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
