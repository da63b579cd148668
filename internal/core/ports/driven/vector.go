package driven

import (
	"context"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
)

// VectorIndex persists chunk vectors plus metadata and provides
// nearest-neighbour similarity search. The index is rebuilt wholesale,
// never incrementally merged: Rebuild is an administrative, offline
// operation that must not run concurrently with Query (rebuild-then-
// restart). Queries against an absent persisted index return an empty
// result set, not an error.
type VectorIndex interface {
	// Rebuild replaces the full index with the given embedded chunks and
	// persists it. Any previously persisted index is removed first.
	Rebuild(ctx context.Context, chunks []domain.Chunk) error

	// Query finds up to k chunks nearest to the query embedding, ordered
	// by descending similarity. When opts.Tool is set, results are
	// restricted to chunks with that tool. When the best hit scores below
	// opts.Threshold the whole result set is dropped, signalling "no
	// relevant context" rather than returning weak matches.
	Query(ctx context.Context, embedding []float32, k int, opts QueryOptions) ([]domain.ScoredChunk, error)

	// Count returns the number of persisted chunks, 0 for a missing index.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}

// QueryOptions narrows a vector query.
type QueryOptions struct {
	// Tool restricts results to one tool's documentation. Empty means
	// no filter.
	Tool string

	// Threshold is the absolute relevance cutoff applied to the best
	// hit. Zero disables the cutoff.
	Threshold float64
}
