package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
)

func lovableProfile() domain.ToolProfile {
	return domain.ToolProfile{
		Tool:        domain.ToolLovable,
		DisplayName: "Lovable.dev",
	}
}

func TestValidatePromptWellFormed(t *testing.T) {
	prompt := `# Lovable.dev - App Skeleton

## Project: TaskFlow

A task management app for small teams.

## Task

Build the skeleton. Requirements: routing and layout must be in place.

## Guidelines
- React with TypeScript
`

	report := validatePrompt(prompt, lovableProfile())

	assert.True(t, report.Valid)
	assert.GreaterOrEqual(t, report.Score, validThreshold)
	assert.Empty(t, report.Issues)
}

func TestValidatePromptTooShort(t *testing.T) {
	report := validatePrompt("build an app", lovableProfile())

	assert.False(t, report.Valid)
	require := assert.New(t)
	require.NotEmpty(report.Issues)
	require.Contains(report.Issues[0], "too short")
}

func TestValidatePromptTooLong(t *testing.T) {
	prompt := "project task guidelines lovable must " + strings.Repeat("x", maxPromptLength)
	report := validatePrompt(prompt, lovableProfile())

	found := false
	for _, issue := range report.Issues {
		if strings.Contains(issue, "too long") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidatePromptMissingSections(t *testing.T) {
	prompt := "Use Lovable.dev to build something nice. " + strings.Repeat("detail ", 20)
	report := validatePrompt(prompt, lovableProfile())

	assert.False(t, report.Valid)
	assert.Len(t, report.Issues, 3)
}

func TestValidatePromptToolMentionSuggestion(t *testing.T) {
	prompt := "## Project\n## Task\n## Guidelines\nmust do things " + strings.Repeat("y", 80)
	report := validatePrompt(prompt, lovableProfile())

	found := false
	for _, s := range report.Suggestions {
		if strings.Contains(s, "target tool") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidatePromptScoreClamped(t *testing.T) {
	prompt := "lovable project task guidelines requirement " + strings.Repeat("z", 100)
	report := validatePrompt(prompt, lovableProfile())

	assert.LessOrEqual(t, report.Score, 100)
	assert.True(t, report.Valid)
}
