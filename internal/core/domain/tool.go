package domain

import "fmt"

// SupportedTool is the closed enumeration of AI coding tools that
// Promptsmith can assemble prompts for. Tool identifiers arriving from
// user input must be parsed with ParseTool; there are no runtime
// string-keyed lookups with silent defaults.
type SupportedTool string

// Supported tools.
const (
	ToolLovable     SupportedTool = "lovable"
	ToolUizard      SupportedTool = "uizard"
	ToolAdalo       SupportedTool = "adalo"
	ToolFlutterFlow SupportedTool = "flutterflow"
	ToolFramer      SupportedTool = "framer"
	ToolBubble      SupportedTool = "bubble"
	ToolBolt        SupportedTool = "bolt"
	ToolCursor      SupportedTool = "cursor"
	ToolCline       SupportedTool = "cline"
	ToolV0          SupportedTool = "v0"
	ToolDevin       SupportedTool = "devin"
	ToolWindsurf    SupportedTool = "windsurf"
	ToolRooCode     SupportedTool = "roocode"
	ToolManus       SupportedTool = "manus"
	ToolSameDev     SupportedTool = "same_dev"
)

// AllTools returns every member of the SupportedTool enumeration in a
// stable order.
func AllTools() []SupportedTool {
	return []SupportedTool{
		ToolLovable, ToolUizard, ToolAdalo, ToolFlutterFlow, ToolFramer,
		ToolBubble, ToolBolt, ToolCursor, ToolCline, ToolV0,
		ToolDevin, ToolWindsurf, ToolRooCode, ToolManus, ToolSameDev,
	}
}

// ParseTool converts a tool identifier to a SupportedTool.
// Returns ErrUnknownTool for identifiers outside the enumeration.
func ParseTool(id string) (SupportedTool, error) {
	for _, t := range AllTools() {
		if string(t) == id {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTool, id)
}

// String returns the tool identifier.
func (t SupportedTool) String() string {
	return string(t)
}

// Valid reports whether t is a member of the enumeration.
func (t SupportedTool) Valid() bool {
	_, err := ParseTool(string(t))
	return err == nil
}

// FewShotExample is an input/output pair demonstrating a good prompt
// for a tool.
type FewShotExample struct {
	// Input is the terse user request.
	Input string

	// Output is the expanded prompt the tool responds well to.
	Output string
}

// PromptingStrategy describes one way of phrasing prompts for a tool.
type PromptingStrategy struct {
	// Type names the strategy (structured, conversational, meta, ...).
	Type string

	// Template is the skeleton text the strategy is built around.
	Template string

	// UseCases lists task types the strategy works well for.
	UseCases []string

	// Effectiveness is a rough 0-1 rating from the scraped guidance.
	Effectiveness float64
}

// ToolProfile is the static per-tool prompting configuration.
// Profiles are loaded once at startup and read-only for the lifetime
// of the process.
type ToolProfile struct {
	// Tool is the enumeration member this profile belongs to.
	Tool SupportedTool

	// DisplayName is the human-readable product name (e.g. "Lovable.dev").
	DisplayName string

	// Tone is the register prompts should adopt (e.g. "expert_casual").
	Tone string

	// Format is the preferred prompt layout (e.g. "structured_sections").
	Format string

	// PreferredUseCases lists task types the tool is known to handle well.
	PreferredUseCases []string

	// FewShotExamples are ordered input/output demonstrations.
	FewShotExamples []FewShotExample

	// Strategies are the prompting strategies documented for the tool.
	Strategies []PromptingStrategy

	// StageTemplates maps stages to named templates in the template store.
	StageTemplates map[Stage]string

	// Constraints are hard limits the tool imposes (e.g. "no native binaries").
	Constraints []string

	// OptimizationTips are free-text suggestions appended to prompts.
	OptimizationTips []string

	// CommonPitfalls lists known failure patterns for the tool.
	CommonPitfalls []string

	// VectorNamespace overrides the tool identifier used as the retrieval
	// filter. Empty means filter on Tool.
	VectorNamespace string
}

// Namespace returns the retrieval filter value for this profile.
func (p ToolProfile) Namespace() string {
	if p.VectorNamespace != "" {
		return p.VectorNamespace
	}
	return string(p.Tool)
}

// HasUseCase reports whether taskType is one of the profile's preferred
// use cases (exact match).
func (p ToolProfile) HasUseCase(taskType string) bool {
	for _, uc := range p.PreferredUseCases {
		if uc == taskType {
			return true
		}
	}
	return false
}
