package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600)
	require.NoError(t, err)
}

func TestNewConfigStoreMissingFile(t *testing.T) {
	dir := t.TempDir()

	s, err := NewConfigStore(dir)
	require.NoError(t, err)

	// Missing file is not an error: everything falls back to defaults.
	assert.Equal(t, "", s.GetString(KeyDocsDir))
	assert.Equal(t, 0, s.GetInt(KeyRetrievalK))
	assert.Equal(t, 0.0, s.GetFloat(KeyRelevanceThreshold))
}

func TestConfigStoreLoadsFlattenedKeys(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[paths]
docs_dir = "data"

[embedding]
provider = "gemini"
timeout_seconds = 30

[retrieval]
relevance_threshold = 0.3
k = 5

[chunking]
chunk_size = 1000
chunk_overlap = 200
`)

	s, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "data", s.GetString(KeyDocsDir))
	assert.Equal(t, "gemini", s.GetString(KeyEmbeddingProvider))
	assert.Equal(t, 30, s.GetInt(KeyEmbeddingTimeout))
	assert.InDelta(t, 0.3, s.GetFloat(KeyRelevanceThreshold), 1e-9)
	assert.Equal(t, 5, s.GetInt(KeyRetrievalK))
	assert.Equal(t, 1000, s.GetInt(KeyChunkSize))
	assert.Equal(t, 200, s.GetInt(KeyChunkOverlap))
}

func TestConfigStoreFloatFromInt(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[retrieval]
relevance_threshold = 1
`)

	s, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.GetFloat(KeyRelevanceThreshold))
}

func TestConfigStoreWrongTypes(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[paths]
docs_dir = 42
`)

	s, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "", s.GetString(KeyDocsDir))
	assert.Equal(t, 42, s.GetInt(KeyDocsDir))
	assert.False(t, s.GetBool(KeyDocsDir))
}

func TestConfigStorePath(t *testing.T) {
	dir := t.TempDir()
	s, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), s.Path())
}
