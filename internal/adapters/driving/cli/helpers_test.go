package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driving"
)

// stubAssembly records the last generate call and returns a canned
// result.
type stubAssembly struct {
	lastTask    domain.TaskContext
	lastProject domain.ProjectInfo
	result      domain.PromptResult
	err         error
	calls       int
}

func (s *stubAssembly) Generate(_ context.Context, task domain.TaskContext, project domain.ProjectInfo) (*domain.PromptResult, error) {
	s.calls++
	s.lastTask = task
	s.lastProject = project
	if s.err != nil {
		return nil, s.err
	}
	result := s.result
	return &result, nil
}

func (s *stubAssembly) ValidatePrompt(prompt string, _ domain.SupportedTool) domain.ValidationReport {
	if len(prompt) < 100 {
		return domain.ValidationReport{Score: 30, Issues: []string{"prompt is too short"}}
	}
	return domain.ValidationReport{Score: 80, Valid: true}
}

// stubIndex returns canned rebuild stats.
type stubIndex struct {
	stats driving.IndexStats
	err   error
}

func (s *stubIndex) Rebuild(context.Context) (*driving.IndexStats, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.stats, nil
}

// stubRegistry serves synthesised profiles for every tool.
type stubRegistry struct{}

func (stubRegistry) Get(tool domain.SupportedTool) (domain.ToolProfile, error) {
	if !tool.Valid() {
		return domain.ToolProfile{}, domain.ErrUnknownTool
	}
	return stubRegistry{}.GetDefault(tool), nil
}

func (stubRegistry) GetDefault(tool domain.SupportedTool) domain.ToolProfile {
	return domain.ToolProfile{
		Tool:        tool,
		DisplayName: string(tool),
		Tone:        "professional",
		Format:      "structured_sections",
	}
}

func (stubRegistry) Tools() []domain.SupportedTool {
	return domain.AllTools()
}

func (stubRegistry) Suggest(id string) []domain.SupportedTool {
	if id == "lovble" {
		return []domain.SupportedTool{domain.ToolLovable}
	}
	return nil
}

func (stubRegistry) TaskSuggestions(domain.SupportedTool, string) []string {
	return []string{"Set up the application skeleton"}
}

// setupTestServices wires stub services and returns a cleanup that
// restores the package state.
func setupTestServices() (assembly *stubAssembly, index *stubIndex, cleanup func()) {
	assembly = &stubAssembly{
		result: domain.PromptResult{
			Prompt:             "# Generated prompt body",
			Stage:              domain.StageAppSkeleton,
			Tool:               domain.ToolLovable,
			ConfidenceScore:    0.7,
			AppliedStrategy:    "structured/generic",
			NextSuggestedStage: domain.StagePageUI,
			Validation:         domain.ValidationReport{Score: 75, Valid: true},
		},
	}
	index = &stubIndex{stats: driving.IndexStats{Documents: 4, Chunks: 12, Skipped: 1}}

	Configure(assembly, index, stubRegistry{})
	return assembly, index, func() {
		Configure(nil, nil, nil)
		resetGenerateFlags()
	}
}

// resetGenerateFlags clears sticky flag state between executions.
func resetGenerateFlags() {
	generateTool = ""
	generateStage = ""
	generateTaskType = ""
	generateDescription = ""
	generateProject = ""
	generateProjectDesc = ""
	generateTechStack = nil
	generateAudience = ""
	generateTechReqs = nil
	generateUIReqs = nil
	generateConstraints = nil
	generateBatchFile = ""
	generateOutput = ""
	generateJSON = false
	validateTool = ""
	toolsProjectType = ""
}

// execute runs the root command with args and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
