package driven

import (
	"context"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
)

// DocumentLoader reads documentation files from per-tool folders on
// disk. Each top-level folder maps to one tool; files are UTF-8 text or
// markdown. Unreadable files are skipped with a warning, never fatal.
type DocumentLoader interface {
	// Load walks the documentation tree and returns the loaded
	// documents plus the paths that were skipped.
	Load(ctx context.Context) (*LoadReport, error)
}

// LoadReport is the result of a documentation tree walk.
type LoadReport struct {
	// Documents are the successfully loaded files.
	Documents []domain.Document

	// Skipped lists file paths that could not be read or were not
	// valid UTF-8 text.
	Skipped []string
}
