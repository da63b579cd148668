// Package filesystem loads tool documentation from a local directory
// tree. The tree has one folder per tool ("lovable" or "lovable_docs"),
// each containing UTF-8 markdown or plain-text files.
package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driven"
	"github.com/promptsmith/promptsmith-cli/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// docsSuffix is the optional folder-name suffix ("lovable_docs").
const docsSuffix = "_docs"

// loadableExtensions are the file types consumed by the loader.
var loadableExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// Loader reads documentation files from per-tool folders on disk.
type Loader struct {
	rootDir string
}

// New creates a loader over the given documentation root.
func New(rootDir string) *Loader {
	return &Loader{rootDir: rootDir}
}

// Load walks the documentation tree. Folders that do not map to a
// supported tool are ignored; unreadable or non-UTF-8 files are skipped
// with a warning, never fatal. A missing root yields an empty report.
func (l *Loader) Load(ctx context.Context) (*driven.LoadReport, error) {
	report := &driven.LoadReport{}

	entries, err := os.ReadDir(l.rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("docs directory %s does not exist", l.rootDir)
			return report, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		tool, ok := toolForFolder(entry.Name())
		if !ok {
			logger.Debug("ignoring folder %s: not a supported tool", entry.Name())
			continue
		}

		if err := l.loadFolder(ctx, filepath.Join(l.rootDir, entry.Name()), tool, report); err != nil {
			return nil, err
		}
	}

	// Stable order regardless of directory iteration.
	sort.Slice(report.Documents, func(i, j int) bool {
		return report.Documents[i].SourcePath < report.Documents[j].SourcePath
	})

	logger.Info("loaded %d documents (%d skipped) from %s",
		len(report.Documents), len(report.Skipped), l.rootDir)
	return report, nil
}

// loadFolder reads every loadable file in one tool's folder.
func (l *Loader) loadFolder(ctx context.Context, dir string, tool domain.SupportedTool, report *driven.LoadReport) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			logger.Warn("skipping %s: %v", path, err)
			report.Skipped = append(report.Skipped, path)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !loadableExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable file %s: %v", path, err)
			report.Skipped = append(report.Skipped, path)
			return nil
		}
		if !utf8.Valid(raw) {
			logger.Warn("skipping non-UTF-8 file %s", path)
			report.Skipped = append(report.Skipped, path)
			return nil
		}

		content := string(raw)
		title := extractTitle(content, path)
		if isMarkdown(path) {
			content = stripMarkdown(content)
		} else {
			content = strings.TrimSpace(content)
		}

		report.Documents = append(report.Documents, domain.Document{
			ID:         uuid.New().String(),
			Tool:       tool,
			SourcePath: path,
			Title:      title,
			Content:    content,
			Metadata: map[string]any{
				"filename": filepath.Base(path),
			},
			LoadedAt: time.Now(),
		})
		return nil
	})
}

// toolForFolder maps a folder name to a supported tool.
// Accepts both "lovable" and the legacy "lovable_docs" form.
func toolForFolder(name string) (domain.SupportedTool, bool) {
	id := strings.TrimSuffix(strings.ToLower(name), docsSuffix)
	tool, err := domain.ParseTool(id)
	if err != nil {
		return "", false
	}
	return tool, true
}

// isMarkdown reports whether the path has a markdown extension.
func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}
