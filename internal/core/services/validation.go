package services

import (
	"strings"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
)

// Validation scoring bounds. A prompt shorter than minPromptLength or
// longer than maxPromptLength forfeits the length points.
const (
	minPromptLength = 100
	maxPromptLength = 5000

	lengthPoints       = 30
	toolMentionPoints  = 20
	sectionPoints      = 15
	requirementsPoints = 15

	validThreshold = 70
)

// requirementKeywords signal that the prompt states concrete
// expectations.
var requirementKeywords = []string{"requirement", "must", "should", "need"}

// expectedSections are the structural headings a well-formed prompt
// carries.
var expectedSections = []string{"project", "task", "guidelines"}

// validatePrompt scores prompt text for a tool. Heuristic only: the
// score reports quality, it never blocks the prompt.
func validatePrompt(prompt string, profile domain.ToolProfile) domain.ValidationReport {
	report := domain.ValidationReport{}
	lower := strings.ToLower(prompt)

	switch {
	case len(prompt) < minPromptLength:
		report.Issues = append(report.Issues, "prompt is too short to carry enough context")
		report.Suggestions = append(report.Suggestions, "describe the task and project in more detail")
	case len(prompt) > maxPromptLength:
		report.Issues = append(report.Issues, "prompt is too long and may be truncated by the tool")
		report.Suggestions = append(report.Suggestions, "split the work into smaller incremental prompts")
	default:
		report.Score += lengthPoints
	}

	if strings.Contains(lower, strings.ToLower(profile.DisplayName)) ||
		strings.Contains(lower, string(profile.Tool)) {
		report.Score += toolMentionPoints
	} else {
		report.Suggestions = append(report.Suggestions, "mention the target tool so conventions apply")
	}

	for _, section := range expectedSections {
		if strings.Contains(lower, section) {
			report.Score += sectionPoints
		} else {
			report.Issues = append(report.Issues, "missing a "+section+" section")
		}
	}

	for _, keyword := range requirementKeywords {
		if strings.Contains(lower, keyword) {
			report.Score += requirementsPoints
			break
		}
	}

	if report.Score > 100 {
		report.Score = 100
	}
	report.Valid = report.Score >= validThreshold
	return report
}
