package file

import (
	"os"
	"path/filepath"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driven"
)

func TestLookupWritesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")
	s, err := NewStore(dir)
	require.NoError(t, err)

	tmpl, ok := s.Lookup(driven.TemplateGeneric)
	require.True(t, ok)
	assert.Equal(t, driven.TemplateGeneric, tmpl.Name)
	assert.Contains(t, tmpl.Text, "{{.Project.Name}}")

	// Defaults materialise on disk for the user to edit.
	_, err = os.Stat(filepath.Join(dir, "generic.tmpl"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "lovable_skeleton.tmpl"))
	assert.NoError(t, err)
}

func TestLookupUserFileWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lovable.tmpl"),
		[]byte("custom {{.Project.Name}}"), 0600))

	s, err := NewStore(dir)
	require.NoError(t, err)

	tmpl, ok := s.Lookup("lovable")
	require.True(t, ok)
	assert.Equal(t, "custom {{.Project.Name}}", tmpl.Text)
}

func TestLookupUnknownName(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, ok := s.Lookup("no_such_template")
	assert.False(t, ok)
}

func TestChainFallbackOrder(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	chain := s.Chain(domain.ToolLovable, domain.StageAppSkeleton, "lovable_skeleton")
	require.NotEmpty(t, chain)

	// Explicit profile choice first, generic last. The convention name
	// lovable_app_skeleton has no default, so it is absent.
	assert.Equal(t, "lovable_skeleton", chain[0].Name)
	assert.Equal(t, driven.TemplateGeneric, chain[len(chain)-1].Name)

	names := make([]string, 0, len(chain))
	for _, tmpl := range chain {
		names = append(names, tmpl.Name)
	}
	assert.Contains(t, names, "lovable")
}

func TestChainNoPreferred(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	// Tool with no defaults of its own still gets the generic.
	chain := s.Chain(domain.ToolDevin, domain.StageOptimization, "")
	require.Len(t, chain, 1)
	assert.Equal(t, driven.TemplateGeneric, chain[0].Name)
}

func TestChainDeduplicates(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	chain := s.Chain(domain.ToolBolt, domain.StagePageUI, "bolt")
	seen := make(map[string]int)
	for _, tmpl := range chain {
		seen[tmpl.Name]++
	}
	assert.Equal(t, 1, seen["bolt"])
}

func TestDefaultTemplatesParse(t *testing.T) {
	for name, text := range defaultTemplates {
		_, err := template.New(name).Parse(text)
		assert.NoError(t, err, name)
	}
}
