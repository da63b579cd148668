// Package file serves prompt rendering templates from .tmpl files.
//
// On first use the store writes its embedded defaults into the template
// directory so users can edit them. User files always win over the
// embedded copies. The process-wide generic template is guaranteed to
// resolve even if the user deletes every file.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driven"
	"github.com/promptsmith/promptsmith-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.TemplateStore = (*Store)(nil)

// Store resolves templates from a directory of .tmpl files, falling
// back to the embedded defaults.
type Store struct {
	templateDir string
	initOnce    sync.Once
	initErr     error

	mu    sync.RWMutex
	cache map[string]string
}

// NewStore creates a template store over the given directory.
// If templateDir is empty, defaults to ~/.promptsmith/templates.
func NewStore(templateDir string) (*Store, error) {
	if templateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		templateDir = filepath.Join(home, ".promptsmith", "templates")
	}

	return &Store{
		templateDir: templateDir,
		cache:       make(map[string]string),
	}, nil
}

// Dir returns the template directory path.
func (s *Store) Dir() string {
	return s.templateDir
}

// Lookup returns the named template. User files take precedence over
// embedded defaults.
func (s *Store) Lookup(name string) (driven.Template, bool) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Directory trouble never blocks rendering, the embedded
		// defaults still work.
		logger.Warn("template directory unavailable: %v", s.initErr)
	}

	s.mu.RLock()
	text, ok := s.cache[name]
	s.mu.RUnlock()
	if ok {
		return driven.Template{Name: name, Text: text}, true
	}

	if text, ok := defaultTemplates[name]; ok {
		return driven.Template{Name: name, Text: text}, true
	}
	return driven.Template{}, false
}

// Chain returns candidate templates in fallback order: the profile's
// explicit choice, the <tool>_<stage> convention, the tool's own
// generic, then the embedded process-wide generic. Duplicate names and
// misses are dropped. The result is never empty.
func (s *Store) Chain(tool domain.SupportedTool, stage domain.Stage, preferred string) []driven.Template {
	names := make([]string, 0, 4)
	if preferred != "" {
		names = append(names, preferred)
	}
	names = append(names,
		fmt.Sprintf("%s_%s", tool, stage),
		string(tool),
		driven.TemplateGeneric,
	)

	seen := make(map[string]bool, len(names))
	chain := make([]driven.Template, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if tmpl, ok := s.Lookup(name); ok {
			chain = append(chain, tmpl)
		}
	}

	// defaultTemplates always carries the generic, so the chain cannot
	// come back empty. Guard anyway for user overrides gone wrong.
	if len(chain) == 0 {
		chain = append(chain, driven.Template{
			Name: driven.TemplateGeneric,
			Text: defaultTemplates[driven.TemplateGeneric],
		})
	}
	return chain
}

// initialise creates the template directory, writes embedded defaults
// that are not already present, and loads every .tmpl file into the
// cache. Called once via sync.Once.
func (s *Store) initialise() {
	if err := os.MkdirAll(s.templateDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create template directory: %w", err)
		return
	}

	for name, content := range defaultTemplates {
		path := filepath.Join(s.templateDir, name+".tmpl")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("write default template %s: %w", name, err)
				return
			}
		}
	}

	entries, err := os.ReadDir(s.templateDir)
	if err != nil {
		s.initErr = fmt.Errorf("read template directory: %w", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.templateDir, entry.Name()))
		if err != nil {
			logger.Warn("template %s: %v, ignoring", entry.Name(), err)
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".tmpl")
		s.cache[name] = string(data)
	}
	logger.Debug("loaded %d templates from %s", len(s.cache), s.templateDir)
}
