package services

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driven"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driving"
	"github.com/promptsmith/promptsmith-cli/internal/logger"
)

// Ensure RegistryService implements the interface.
var _ driving.RegistryService = (*RegistryService)(nil)

// maxSuggestions caps fuzzy matches for a misspelled identifier.
const maxSuggestions = 3

// maxTaskSuggestions caps the task idea list.
const maxTaskSuggestions = 8

// RegistryService serves tool profiles. Profiles are loaded once at
// construction; tools without a configured profile get a synthesised
// generic one.
type RegistryService struct {
	profiles map[domain.SupportedTool]domain.ToolProfile
}

// NewRegistryService loads all configured profiles from the store.
func NewRegistryService(store driven.ProfileStore) (*RegistryService, error) {
	profiles, err := store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load tool profiles: %w", err)
	}
	return &RegistryService{profiles: profiles}, nil
}

// Get returns the profile for a supported tool. Tools outside the
// enumeration fail with domain.ErrUnknownTool; supported tools without
// a configured profile get the synthesised default.
func (r *RegistryService) Get(tool domain.SupportedTool) (domain.ToolProfile, error) {
	if !tool.Valid() {
		return domain.ToolProfile{}, fmt.Errorf("%w: %q", domain.ErrUnknownTool, tool)
	}
	return r.GetDefault(tool), nil
}

// GetDefault returns the configured profile, or a synthesised generic
// one. Never fails, even for identifiers outside the enumeration, so
// assembly always has a profile to work with.
func (r *RegistryService) GetDefault(tool domain.SupportedTool) domain.ToolProfile {
	if profile, ok := r.profiles[tool]; ok {
		return profile
	}
	logger.Debug("no configured profile for %s, synthesising default", tool)
	return synthesiseProfile(tool)
}

// Tools returns the supported tools in stable order.
func (r *RegistryService) Tools() []domain.SupportedTool {
	return domain.AllTools()
}

// Suggest returns close matches for a misspelled tool identifier,
// best first.
func (r *RegistryService) Suggest(id string) []domain.SupportedTool {
	tools := domain.AllTools()
	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = string(tool)
	}

	matches := fuzzy.Find(strings.ToLower(strings.TrimSpace(id)), names)
	suggestions := make([]domain.SupportedTool, 0, maxSuggestions)
	for _, m := range matches {
		suggestions = append(suggestions, tools[m.Index])
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

// taskIdeasByProjectType maps a rough project type to starter task
// descriptions, most useful first.
var taskIdeasByProjectType = map[string][]string{
	"web_app": {
		"Set up the application skeleton with routing and layout",
		"Create the user authentication flow",
		"Build the main dashboard page",
		"Add CRUD screens for the core entity",
		"Wire navigation and data fetching between pages",
	},
	"mobile_app": {
		"Scaffold the tab navigation and screen placeholders",
		"Design the onboarding flow",
		"Build the main list and detail screens",
		"Add offline-friendly data sync",
	},
	"dashboard": {
		"Lay out the dashboard grid with placeholder widgets",
		"Build the primary chart component with live data",
		"Add filtering and date-range controls",
		"Create the settings and user management pages",
	},
	"landing_page": {
		"Design the hero section with a clear call to action",
		"Build the feature highlights and social proof sections",
		"Add a contact or signup form with validation",
	},
	"ecommerce": {
		"Scaffold product listing and detail pages",
		"Build the cart and checkout flow",
		"Integrate payment processing",
		"Add order history and account pages",
	},
}

// genericTaskIdeas back-fill when the project type is unknown.
var genericTaskIdeas = []string{
	"Set up the application skeleton",
	"Design the main page interface",
	"Connect the screens into a working flow",
	"Add the first feature end to end",
}

// TaskSuggestions returns task ideas for a tool and project type,
// coloured by the tool's preferred use cases.
func (r *RegistryService) TaskSuggestions(tool domain.SupportedTool, projectType string) []string {
	key := strings.ToLower(strings.TrimSpace(projectType))
	ideas, ok := taskIdeasByProjectType[key]
	if !ok {
		ideas = genericTaskIdeas
	}

	suggestions := make([]string, 0, maxTaskSuggestions)
	suggestions = append(suggestions, ideas...)

	profile := r.GetDefault(tool)
	for _, useCase := range profile.PreferredUseCases {
		if len(suggestions) == maxTaskSuggestions {
			break
		}
		idea := fmt.Sprintf("Lean into %s, a strength of %s",
			strings.ReplaceAll(useCase, "_", " "), profile.DisplayName)
		suggestions = append(suggestions, idea)
	}

	if len(suggestions) > maxTaskSuggestions {
		suggestions = suggestions[:maxTaskSuggestions]
	}
	return suggestions
}

// displayNames for synthesised profiles. Tools not listed fall back to
// their identifier.
var displayNames = map[domain.SupportedTool]string{
	domain.ToolLovable:     "Lovable.dev",
	domain.ToolUizard:      "Uizard",
	domain.ToolAdalo:       "Adalo",
	domain.ToolFlutterFlow: "FlutterFlow",
	domain.ToolFramer:      "Framer",
	domain.ToolBubble:      "Bubble",
	domain.ToolBolt:        "Bolt.new",
	domain.ToolCursor:      "Cursor",
	domain.ToolCline:       "Cline",
	domain.ToolV0:          "v0 by Vercel",
	domain.ToolDevin:       "Devin",
	domain.ToolWindsurf:    "Windsurf",
	domain.ToolRooCode:     "Roo Code",
	domain.ToolManus:       "Manus",
	domain.ToolSameDev:     "Same.dev",
}

// synthesiseProfile builds a neutral profile for a tool without
// configuration.
func synthesiseProfile(tool domain.SupportedTool) domain.ToolProfile {
	name, ok := displayNames[tool]
	if !ok {
		name = string(tool)
	}
	return domain.ToolProfile{
		Tool:        tool,
		DisplayName: name,
		Tone:        "professional",
		Format:      "structured_sections",
		Strategies: []domain.PromptingStrategy{
			{Type: "structured", Effectiveness: 0.7},
		},
		VectorNamespace: string(tool),
	}
}
