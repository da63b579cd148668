package domain

// PromptResult is the assembled prompt plus scoring metadata.
// Produced once per request and returned to the caller; not persisted.
type PromptResult struct {
	// Prompt is the rendered prompt text.
	Prompt string `json:"prompt"`

	// Stage is the pipeline stage the prompt was assembled for.
	Stage Stage `json:"stage"`

	// Tool is the target tool.
	Tool SupportedTool `json:"tool_id"`

	// ConfidenceScore is a heuristic in [0,1] built from independent
	// input signals. It is not a probability.
	ConfidenceScore float64 `json:"confidence_score"`

	// Sources lists the file paths of the retrieved chunks.
	Sources []string `json:"sources,omitempty"`

	// NextSuggestedStage is the forward-only successor stage, empty for
	// terminal stages.
	NextSuggestedStage Stage `json:"next_suggested_stage,omitempty"`

	// AppliedStrategy names the prompting strategy used.
	AppliedStrategy string `json:"applied_strategy"`

	// EnhancementSuggestions are non-fatal hints for improving the input.
	EnhancementSuggestions []string `json:"enhancement_suggestions,omitempty"`

	// Validation is the heuristic validation report, never nil-scored:
	// a failing validation still returns the prompt.
	Validation ValidationReport `json:"validation"`
}

// ValidationReport is the outcome of heuristic prompt validation.
// Validation never blocks returning a prompt; it only reports.
type ValidationReport struct {
	// Score is 0-100.
	Score int `json:"score"`

	// Valid is true when Score passes the acceptance threshold.
	Valid bool `json:"valid"`

	// Issues are problems found (length bounds, missing sections).
	Issues []string `json:"issues,omitempty"`

	// Suggestions are optional improvements.
	Suggestions []string `json:"suggestions,omitempty"`
}

// PromptRequest is the external request schema shared by the CLI
// surfaces, including batch JSON files.
type PromptRequest struct {
	Tool  string `json:"tool_id"`
	Stage string `json:"stage"`

	Project struct {
		Name           string   `json:"name"`
		Description    string   `json:"description"`
		TechStack      []string `json:"tech_stack"`
		TargetAudience string   `json:"target_audience"`
	} `json:"project"`

	Task struct {
		Type                  string   `json:"type"`
		Description           string   `json:"description"`
		TechnicalRequirements []string `json:"technical_requirements"`
		UIRequirements        []string `json:"ui_requirements"`
		Constraints           []string `json:"constraints"`
	} `json:"task"`
}
