package file

import "github.com/promptsmith/promptsmith-cli/internal/core/domain"

// starterProfiles are written to the profile directory on first load so
// users have working examples to copy from. Content is distilled from
// the scraped tool documentation.
//
//nolint:lll // Profile content is intentionally long and should not be wrapped.
var starterProfiles = map[domain.SupportedTool]string{
	domain.ToolLovable: `tool_name: Lovable.dev
format: structured_sections
tone: expert_casual
preferred_use_cases:
  - react_development
  - ui_scaffolding
  - supabase_integration
  - component_optimization
  - responsive_design
few_shot_examples:
  - input: Create a task management dashboard
    output: Build a React dashboard with task CRUD operations, filtering, and real-time updates using Supabase. Include responsive design with Tailwind CSS and shadcn/ui components.
prompting_strategies:
  - type: structured
    template: "Context: {{.Context}}\nTask: {{.Task}}\nGuidelines: {{.Guidelines}}\nConstraints: {{.Constraints}}"
    use_cases: [complex_features, new_projects]
    effectiveness: 0.9
  - type: conversational
    template: "Let's {{.Action}}. {{.Description}}"
    use_cases: [feature_additions, debugging]
    effectiveness: 0.8
stage_templates:
  app_skeleton: lovable_skeleton
  page_ui: lovable_ui
  flow_connections: lovable_flow
constraints:
  - react_typescript_only
  - supabase_backend
  - tailwind_styling
  - responsive_required
optimization_tips:
  - Use Knowledge Base extensively
  - Implement incremental development
  - Leverage Chat mode for planning
  - Be explicit about constraints
common_pitfalls:
  - overly_complex_single_prompts
  - insufficient_context
  - ignoring_knowledge_base
vector_namespace: lovable
`,

	domain.ToolBolt: `tool_name: Bolt.new
format: enhanced_prompts
tone: technical_precise
preferred_use_cases:
  - rapid_prototyping
  - web_applications
  - javascript_projects
  - iterative_development
few_shot_examples:
  - input: Todo app
    output: Create a React todo application with TypeScript, featuring task creation, editing, deletion, and filtering. Include local storage persistence, responsive design with Tailwind CSS, and accessibility features.
prompting_strategies:
  - type: structured
    template: "Enhanced detailed prompt with complete specifications and constraints"
    use_cases: [complex_applications, production_ready]
    effectiveness: 0.95
stage_templates:
  app_skeleton: bolt_architecture
constraints:
  - webcontainer_limitations
  - browser_compatible_only
  - no_native_binaries
optimization_tips:
  - Use enhance prompt feature
  - Target specific files
  - Break into incremental steps
common_pitfalls:
  - context_window_overflow
  - too_many_simultaneous_changes
vector_namespace: bolt
`,

	domain.ToolCursor: `tool_name: Cursor
format: conversational
tone: technical
preferred_use_cases:
  - code_editing
  - refactoring
  - debugging
prompting_strategies:
  - type: conversational
    template: "{{.Description}}"
    use_cases: [code_editing, debugging]
    effectiveness: 0.85
constraints:
  - existing_codebase_context
optimization_tips:
  - Reference files explicitly
  - Keep requests scoped to one change
vector_namespace: cursor
`,
}
