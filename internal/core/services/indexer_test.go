package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driven"
)

func testDocuments() []domain.Document {
	return []domain.Document{
		{ID: "d1", Tool: domain.ToolLovable, Title: "Prompting", SourcePath: "lovable/prompting.md"},
		{ID: "d2", Tool: domain.ToolBolt, Title: "Basics", SourcePath: "bolt_docs/basics.md"},
	}
}

func TestIndexRebuild(t *testing.T) {
	loader := &mockLoader{report: driven.LoadReport{
		Documents: testDocuments(),
		Skipped:   []string{"lovable/broken.md"},
	}}
	index := &mockIndex{}
	embedder := &mockEmbedder{}

	svc := NewIndexService(loader, &mockSplitter{perDoc: 3}, embedder, index,
		WithEmbedRate(1000))

	stats, err := svc.Rebuild(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Documents)
	assert.Equal(t, 6, stats.Chunks)
	assert.Equal(t, 1, stats.Skipped)

	require.Len(t, index.rebuilt, 6)
	for _, chunk := range index.rebuilt {
		assert.NotEmpty(t, chunk.Embedding, chunk.ID)
	}
}

func TestIndexRebuildBatches(t *testing.T) {
	loader := &mockLoader{report: driven.LoadReport{Documents: testDocuments()}}
	embedder := &mockEmbedder{}

	svc := NewIndexService(loader, &mockSplitter{perDoc: 5}, embedder, &mockIndex{},
		WithBatchSize(4), WithEmbedRate(1000))

	_, err := svc.Rebuild(context.Background())
	require.NoError(t, err)

	// 10 chunks in batches of 4: three provider calls.
	assert.Equal(t, 3, embedder.calls)
}

func TestIndexRebuildEmptyTree(t *testing.T) {
	svc := NewIndexService(&mockLoader{}, &mockSplitter{}, &mockEmbedder{}, &mockIndex{},
		WithEmbedRate(1000))

	stats, err := svc.Rebuild(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Documents)
	assert.Zero(t, stats.Chunks)
}

func TestIndexRebuildLoaderFailure(t *testing.T) {
	svc := NewIndexService(&mockLoader{err: errors.New("boom")},
		&mockSplitter{}, &mockEmbedder{}, &mockIndex{}, WithEmbedRate(1000))

	_, err := svc.Rebuild(context.Background())
	assert.Error(t, err)
}

func TestIndexRebuildEmbedderFailure(t *testing.T) {
	loader := &mockLoader{report: driven.LoadReport{Documents: testDocuments()}}
	embedder := &mockEmbedder{err: domain.ErrProviderUnavailable}

	svc := NewIndexService(loader, &mockSplitter{perDoc: 1}, embedder, &mockIndex{},
		WithEmbedRate(1000))

	_, err := svc.Rebuild(context.Background())
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}
