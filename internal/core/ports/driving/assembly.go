package driving

import (
	"context"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
)

// AssemblyService turns a task context and project info into a rendered
// prompt. Implementations are stateless across calls; all state lives in
// the immutable inputs and the read-only profile registry and vector
// index.
//
// Generate never surfaces an unhandled failure for a well-formed
// request: the worst case is a low-confidence, template-only prompt plus
// a validation warning list.
type AssemblyService interface {
	// Generate assembles a prompt for the given task and project.
	Generate(ctx context.Context, task domain.TaskContext, project domain.ProjectInfo) (*domain.PromptResult, error)

	// ValidatePrompt runs heuristic validation on arbitrary prompt text
	// for the given tool. Non-fatal: a low score never blocks the prompt.
	ValidatePrompt(prompt string, tool domain.SupportedTool) domain.ValidationReport
}
