// Package chromem persists chunk vectors in an embedded chromem-go
// database on disk. No server process and no cgo involved.
package chromem

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"

	chromemgo "github.com/philippgille/chromem-go"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driven"
	"github.com/promptsmith/promptsmith-cli/internal/logger"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

const collectionName = "tool-docs"

// addConcurrency bounds parallel persistence during Rebuild.
const addConcurrency = 4

// Index is a persistent vector index over documentation chunks.
type Index struct {
	indexDir string

	mu sync.Mutex
	db *chromemgo.DB
}

// New creates an index over the given directory. The directory is not
// touched until Rebuild or the first Query.
func New(indexDir string) *Index {
	return &Index{indexDir: indexDir}
}

// Dir returns the index directory path.
func (x *Index) Dir() string {
	return x.indexDir
}

// Rebuild replaces the persisted index with the given chunks. The old
// index directory is removed wholesale first, matching the
// rebuild-then-restart contract.
func (x *Index) Rebuild(ctx context.Context, chunks []domain.Chunk) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if err := os.RemoveAll(x.indexDir); err != nil {
		return fmt.Errorf("clear index directory: %w", err)
	}
	x.db = nil

	db, err := chromemgo.NewPersistentDB(x.indexDir, false)
	if err != nil {
		return fmt.Errorf("create index database: %w", err)
	}

	col, err := db.CreateCollection(collectionName, nil, nil)
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	docs := make([]chromemgo.Document, 0, len(chunks))
	for _, chunk := range chunks {
		if len(chunk.Embedding) == 0 {
			return fmt.Errorf("%w: chunk %s has no embedding", domain.ErrInvalidInput, chunk.ID)
		}
		docs = append(docs, chromemgo.Document{
			ID:        chunk.ID,
			Embedding: chunk.Embedding,
			Content:   chunk.Content,
			Metadata: map[string]string{
				"document_id":  chunk.DocumentID,
				"tool":         string(chunk.Tool),
				"category":     string(chunk.Category),
				"source_path":  chunk.SourcePath,
				"position":     strconv.Itoa(chunk.Position),
				"start_offset": strconv.Itoa(chunk.StartOffset),
			},
		})
	}

	if len(docs) > 0 {
		if err := col.AddDocuments(ctx, docs, addConcurrency); err != nil {
			return fmt.Errorf("persist chunks: %w", err)
		}
	}

	x.db = db
	logger.Debug("rebuilt vector index with %d chunks at %s", len(docs), x.indexDir)
	return nil
}

// Query returns up to k chunks nearest to the embedding. A missing or
// empty index yields an empty result, never an error. When the best hit
// falls below opts.Threshold the whole result set is dropped.
func (x *Index) Query(ctx context.Context, embedding []float32, k int, opts driven.QueryOptions) ([]domain.ScoredChunk, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	col, err := x.collection()
	if err != nil {
		return nil, err
	}
	if col == nil || col.Count() == 0 {
		return nil, nil
	}

	if k <= 0 {
		k = 1
	}
	if count := col.Count(); k > count {
		k = count
	}

	var where map[string]string
	if opts.Tool != "" {
		where = map[string]string{"tool": opts.Tool}
	}

	results, err := col.QueryEmbedding(ctx, embedding, k, where, nil)
	if err != nil {
		// chromem rejects nResults above the filtered document count.
		// A filter that matches nothing is "no relevant context".
		logger.Debug("vector query fell back to empty: %v", err)
		return nil, nil
	}
	if len(results) == 0 {
		return nil, nil
	}

	if opts.Threshold > 0 && float64(results[0].Similarity) < opts.Threshold {
		logger.Debug("best hit %.3f below threshold %.3f, dropping results",
			results[0].Similarity, opts.Threshold)
		return nil, nil
	}

	scored := make([]domain.ScoredChunk, 0, len(results))
	for _, res := range results {
		scored = append(scored, domain.ScoredChunk{
			Chunk: resultToChunk(res),
			Score: float64(res.Similarity),
		})
	}
	return scored, nil
}

// Count returns the number of persisted chunks, 0 for a missing index.
func (x *Index) Count(ctx context.Context) (int, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	col, err := x.collection()
	if err != nil {
		return 0, err
	}
	if col == nil {
		return 0, nil
	}
	return col.Count(), nil
}

// Close releases the database handle.
func (x *Index) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.db = nil
	return nil
}

// collection opens the persisted database lazily and returns the chunk
// collection, nil when nothing has been indexed yet. Callers hold x.mu.
func (x *Index) collection() (*chromemgo.Collection, error) {
	if x.db == nil {
		if _, err := os.Stat(x.indexDir); os.IsNotExist(err) {
			return nil, nil
		}
		db, err := chromemgo.NewPersistentDB(x.indexDir, false)
		if err != nil {
			return nil, fmt.Errorf("open index database: %w", err)
		}
		x.db = db
	}
	return x.db.GetCollection(collectionName, nil), nil
}

func resultToChunk(res chromemgo.Result) domain.Chunk {
	chunk := domain.Chunk{
		ID:         res.ID,
		DocumentID: res.Metadata["document_id"],
		Tool:       domain.SupportedTool(res.Metadata["tool"]),
		Category:   domain.Category(res.Metadata["category"]),
		SourcePath: res.Metadata["source_path"],
		Content:    res.Content,
		Embedding:  res.Embedding,
	}
	if pos, err := strconv.Atoi(res.Metadata["position"]); err == nil {
		chunk.Position = pos
	}
	if off, err := strconv.Atoi(res.Metadata["start_offset"]); err == nil {
		chunk.StartOffset = off
	}
	return chunk
}
