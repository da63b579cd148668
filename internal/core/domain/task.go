package domain

// Complexity is a rough project size classification.
type Complexity string

// Complexity levels.
const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// ProjectInfo describes the project a prompt is generated for.
// Constructed per request from user input; immutable.
type ProjectInfo struct {
	// Name is the project name.
	Name string

	// Description is a short project summary.
	Description string

	// TechStack lists the technologies in play.
	TechStack []string

	// TargetAudience describes who the product is for.
	TargetAudience string

	// Requirements are project-level requirements.
	Requirements []string

	// Industry is an optional industry hint.
	Industry string

	// Complexity defaults to medium when unset.
	Complexity Complexity
}

// TaskContext describes a single prompt-generation task.
// Constructed per request; immutable; consumed once by the assembler.
type TaskContext struct {
	// TaskType names what is being built (e.g. "user_authentication").
	TaskType string

	// ProjectName is the project the task belongs to.
	ProjectName string

	// Description is the free-text task description.
	Description string

	// Stage is the pipeline stage the prompt targets.
	Stage Stage

	// TechnicalRequirements lists backend/logic requirements.
	TechnicalRequirements []string

	// UIRequirements lists presentation requirements.
	UIRequirements []string

	// Constraints lists hard limits for this task.
	Constraints []string

	// TargetTool is the tool the prompt is assembled for.
	TargetTool SupportedTool
}

// Validate checks the fields required for assembly.
func (t TaskContext) Validate() error {
	if t.TaskType == "" || t.Description == "" {
		return ErrInvalidInput
	}
	return nil
}
