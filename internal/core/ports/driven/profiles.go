package driven

import "github.com/promptsmith/promptsmith-cli/internal/core/domain"

// ProfileStore loads static per-tool prompting configuration.
// Profiles are loaded once at process start and read-only thereafter;
// there is no runtime mutation path.
type ProfileStore interface {
	// LoadAll returns every configured tool profile keyed by tool.
	// A tool without a configuration file is simply absent from the map;
	// the registry synthesises a default profile for it on demand.
	LoadAll() (map[domain.SupportedTool]domain.ToolProfile, error)
}
