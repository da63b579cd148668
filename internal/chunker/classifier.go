package chunker

import (
	"path/filepath"
	"strings"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
)

// categoryRule maps a filename substring to a category.
type categoryRule struct {
	keyword  string
	category domain.Category
}

// categoryRules is the fixed ordered rule list. First match wins.
// This is a filename keyword heuristic, nothing more: a file named
// "ui_prompting_guide.md" classifies as prompting because that rule
// comes first.
var categoryRules = []categoryRule{
	{"prompt", domain.CategoryPrompting},
	{"ui", domain.CategoryUIDesign},
	{"design", domain.CategoryUIDesign},
	{"layout", domain.CategoryUIDesign},
	{"integration", domain.CategoryIntegration},
	{"api", domain.CategoryIntegration},
	{"webhook", domain.CategoryIntegration},
	{"debug", domain.CategoryDebugging},
	{"troubleshoot", domain.CategoryDebugging},
	{"error", domain.CategoryDebugging},
}

// Classify assigns a documentation category by matching filename
// substrings against the fixed rule list. Unmatched files are general.
func Classify(sourcePath string) domain.Category {
	name := strings.ToLower(filepath.Base(sourcePath))

	for _, rule := range categoryRules {
		if strings.Contains(name, rule.keyword) {
			return rule.category
		}
	}
	return domain.CategoryGeneral
}
