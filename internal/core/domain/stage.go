package domain

import "fmt"

// Stage is one phase in the fixed development-prompt pipeline.
// The main line runs skeleton -> page UI -> flow connections ->
// feature-specific -> optimization; debugging is a side branch
// reachable from any stage.
type Stage string

// Pipeline stages.
const (
	StageAppSkeleton     Stage = "app_skeleton"
	StagePageUI          Stage = "page_ui"
	StageFlowConnections Stage = "flow_connections"
	StageFeatureSpecific Stage = "feature_specific"
	StageDebugging       Stage = "debugging"
	StageOptimization    Stage = "optimization"
)

// stageProgression is the fixed forward-only lookup table.
// Terminal stages (optimization, debugging) have no entry.
var stageProgression = map[Stage]Stage{
	StageAppSkeleton:     StagePageUI,
	StagePageUI:          StageFlowConnections,
	StageFlowConnections: StageFeatureSpecific,
	StageFeatureSpecific: StageOptimization,
}

// AllStages returns every stage in pipeline order.
func AllStages() []Stage {
	return []Stage{
		StageAppSkeleton, StagePageUI, StageFlowConnections,
		StageFeatureSpecific, StageDebugging, StageOptimization,
	}
}

// ParseStage converts a stage name to a Stage.
// Returns ErrUnknownStage for names outside the enumeration.
func ParseStage(name string) (Stage, error) {
	for _, s := range AllStages() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStage, name)
}

// String returns the stage name.
func (s Stage) String() string {
	return string(s)
}

// Valid reports whether s is a member of the enumeration.
func (s Stage) Valid() bool {
	_, err := ParseStage(string(s))
	return err == nil
}

// Next returns the suggested next stage and true, or false for terminal
// stages.
func (s Stage) Next() (Stage, bool) {
	next, ok := stageProgression[s]
	return next, ok
}

// Title returns a human-readable form of the stage name.
func (s Stage) Title() string {
	switch s {
	case StageAppSkeleton:
		return "App Skeleton"
	case StagePageUI:
		return "Page UI"
	case StageFlowConnections:
		return "Flow Connections"
	case StageFeatureSpecific:
		return "Feature Specific"
	case StageDebugging:
		return "Debugging"
	case StageOptimization:
		return "Optimization"
	default:
		return string(s)
	}
}
