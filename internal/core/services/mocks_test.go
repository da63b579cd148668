package services

import (
	"context"
	"fmt"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driven"
)

// mockProfileStore serves a fixed profile map.
type mockProfileStore struct {
	profiles map[domain.SupportedTool]domain.ToolProfile
	err      error
}

func (m *mockProfileStore) LoadAll() (map[domain.SupportedTool]domain.ToolProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profiles, nil
}

// mockEmbedder returns deterministic embeddings.
type mockEmbedder struct {
	dimensions int
	err        error
	calls      int
}

func (m *mockEmbedder) embed(text string) []float32 {
	v := make([]float32, m.dims())
	v[0] = float32(len(text)%7) + 1
	return v
}

func (m *mockEmbedder) dims() int {
	if m.dimensions == 0 {
		return 4
	}
	return m.dimensions
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.calls++
	return m.embed(text), nil
}

func (m *mockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.calls++
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = m.embed(t)
	}
	return out, nil
}

func (m *mockEmbedder) Dimensions() int                { return m.dims() }
func (m *mockEmbedder) ModelName() string              { return "mock-embedding" }
func (m *mockEmbedder) Ping(ctx context.Context) error { return m.err }
func (m *mockEmbedder) Close() error                   { return nil }

// mockIndex records rebuilds and serves canned query results.
type mockIndex struct {
	results   []domain.ScoredChunk
	queryErr  error
	rebuilt   []domain.Chunk
	lastQuery driven.QueryOptions
	lastK     int
}

func (m *mockIndex) Rebuild(ctx context.Context, chunks []domain.Chunk) error {
	m.rebuilt = chunks
	return nil
}

func (m *mockIndex) Query(ctx context.Context, embedding []float32, k int, opts driven.QueryOptions) ([]domain.ScoredChunk, error) {
	m.lastQuery = opts
	m.lastK = k
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.results, nil
}

func (m *mockIndex) Count(ctx context.Context) (int, error) { return len(m.rebuilt), nil }
func (m *mockIndex) Close() error                           { return nil }

// mockLoader serves a fixed load report.
type mockLoader struct {
	report driven.LoadReport
	err    error
}

func (m *mockLoader) Load(ctx context.Context) (*driven.LoadReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &m.report, nil
}

// mockSplitter yields a fixed number of chunks per document.
type mockSplitter struct {
	perDoc int
}

func (m *mockSplitter) Split(doc domain.Document) []domain.Chunk {
	chunks := make([]domain.Chunk, m.perDoc)
	for i := range chunks {
		chunks[i] = domain.Chunk{
			ID:         fmt.Sprintf("%s-%d", doc.ID, i),
			DocumentID: doc.ID,
			Tool:       doc.Tool,
			Content:    fmt.Sprintf("chunk %d of %s", i, doc.Title),
			Position:   i,
			SourcePath: doc.SourcePath,
		}
	}
	return chunks
}

// mockTemplates serves an explicit chain.
type mockTemplates struct {
	chain []driven.Template
}

func (m *mockTemplates) Lookup(name string) (driven.Template, bool) {
	for _, t := range m.chain {
		if t.Name == name {
			return t, true
		}
	}
	return driven.Template{}, false
}

func (m *mockTemplates) Chain(tool domain.SupportedTool, stage domain.Stage, preferred string) []driven.Template {
	return m.chain
}
