package driving

import "context"

// IndexService rebuilds the persistent vector index from the
// documentation tree. This is an administrative, offline operation: it
// is not expected to run while prompts are being served (rebuild, then
// restart).
type IndexService interface {
	// Rebuild loads, chunks, embeds and persists the whole
	// documentation tree, replacing any existing index.
	Rebuild(ctx context.Context) (*IndexStats, error)
}

// IndexStats summarises a rebuild.
type IndexStats struct {
	// Documents is the number of files loaded.
	Documents int

	// Chunks is the number of chunks embedded and persisted.
	Chunks int

	// Skipped is the number of unreadable files that were passed over.
	Skipped int
}
