package driving

import "github.com/promptsmith/promptsmith-cli/internal/core/domain"

// RegistryService exposes the read-only tool profile registry.
type RegistryService interface {
	// Get returns the profile for a tool in the closed enumeration.
	// Fails with domain.ErrUnknownTool otherwise.
	Get(tool domain.SupportedTool) (domain.ToolProfile, error)

	// GetDefault returns the configured profile for the tool, or a
	// synthesised generic profile when no configuration exists. It never
	// fails for tools in the enumeration, and synthesises even for
	// unknown identifiers so assembly can always proceed.
	GetDefault(tool domain.SupportedTool) domain.ToolProfile

	// Tools returns the supported tools in stable order.
	Tools() []domain.SupportedTool

	// Suggest returns close matches for a misspelled tool identifier.
	Suggest(id string) []domain.SupportedTool

	// TaskSuggestions returns task ideas for a tool and project type.
	TaskSuggestions(tool domain.SupportedTool, projectType string) []string
}
