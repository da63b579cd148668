package services

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driven"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driving"
	"github.com/promptsmith/promptsmith-cli/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// Default embedding batch shape. Batches are throttled so a large
// documentation tree does not trip provider rate limits.
const (
	DefaultEmbedBatchSize = 64
	DefaultEmbedRate      = 2 // batches per second
)

// Splitter turns a document into chunks.
type Splitter interface {
	Split(doc domain.Document) []domain.Chunk
}

// IndexOption configures an IndexService.
type IndexOption func(*IndexService)

// WithBatchSize sets how many chunks are embedded per provider call.
func WithBatchSize(n int) IndexOption {
	return func(s *IndexService) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithEmbedRate sets the embedding batch rate limit per second.
func WithEmbedRate(perSecond float64) IndexOption {
	return func(s *IndexService) {
		if perSecond > 0 {
			s.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

// IndexService rebuilds the vector index from the documentation tree:
// load, chunk, embed, persist.
type IndexService struct {
	loader   driven.DocumentLoader
	splitter Splitter
	embedder driven.EmbeddingService
	index    driven.VectorIndex

	batchSize int
	limiter   *rate.Limiter
}

// NewIndexService creates an index rebuild service.
func NewIndexService(
	loader driven.DocumentLoader,
	splitter Splitter,
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
	opts ...IndexOption,
) *IndexService {
	s := &IndexService{
		loader:    loader,
		splitter:  splitter,
		embedder:  embedder,
		index:     index,
		batchSize: DefaultEmbedBatchSize,
		limiter:   rate.NewLimiter(rate.Limit(DefaultEmbedRate), 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rebuild replaces the persistent index with a fresh embedding of the
// whole documentation tree.
func (s *IndexService) Rebuild(ctx context.Context) (*driving.IndexStats, error) {
	logger.Section("Index Rebuild")

	if s.embedder == nil {
		return nil, fmt.Errorf("%w: no embedding provider configured", domain.ErrProviderUnavailable)
	}

	report, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	logger.Info("loaded %d documents (%d skipped)", len(report.Documents), len(report.Skipped))

	var chunks []domain.Chunk
	for _, doc := range report.Documents {
		chunks = append(chunks, s.splitter.Split(doc)...)
	}
	logger.Info("split into %d chunks", len(chunks))

	if err := s.embedAll(ctx, chunks); err != nil {
		return nil, err
	}

	if err := s.index.Rebuild(ctx, chunks); err != nil {
		return nil, fmt.Errorf("rebuild index: %w", err)
	}

	return &driving.IndexStats{
		Documents: len(report.Documents),
		Chunks:    len(chunks),
		Skipped:   len(report.Skipped),
	}, nil
}

// embedAll fills in chunk embeddings in rate-limited batches.
func (s *IndexService) embedAll(ctx context.Context, chunks []domain.Chunk) error {
	for start := 0; start < len(chunks); start += s.batchSize {
		end := start + s.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Content
		}

		embeddings, err := s.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed batch at %d: %w", start, err)
		}
		if len(embeddings) != len(batch) {
			return fmt.Errorf("%w: got %d embeddings for %d chunks",
				domain.ErrProviderUnavailable, len(embeddings), len(batch))
		}

		for i := range batch {
			batch[i].Embedding = embeddings[i]
		}
		logger.Debug("embedded chunks %d-%d of %d", start, end-1, len(chunks))
	}
	return nil
}
