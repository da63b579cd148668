package file

// defaultTemplates are embedded in the binary and written to the
// template directory on first use. They render a struct with Project,
// Task, Profile, StageTitle and Context fields; see the assembly
// service for the exact shape.
var defaultTemplates = map[string]string{
	"generic": `# {{.Profile.DisplayName}} - {{.StageTitle}}

## Project: {{.Project.Name}}

{{.Project.Description}}
{{- if .Project.TechStack}}

**Tech Stack:**
{{- range .Project.TechStack}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Project.TargetAudience}}

**Target Audience:** {{.Project.TargetAudience}}
{{- end}}

## Task

{{.Task.Description}}
{{- if .Task.TechnicalRequirements}}

**Technical Requirements:**
{{- range .Task.TechnicalRequirements}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Task.UIRequirements}}

**UI Requirements:**
{{- range .Task.UIRequirements}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Task.Constraints}}

**Constraints:**
{{- range .Task.Constraints}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Context}}

## Relevant Documentation
{{- range .Context}}

> {{.Excerpt}}

*Source: {{.Source}}*
{{- end}}
{{- end}}
{{- if .Profile.Constraints}}

## Guidelines
{{- range .Profile.Constraints}}
- {{.}}
{{- end}}
{{- end}}
`,

	"lovable": `Let's work on {{.Project.Name}} in Lovable.

{{.Project.Description}}

For this {{.StageTitle}} step: {{.Task.Description}}
{{- if .Task.TechnicalRequirements}}

Keep these technical points in mind:
{{- range .Task.TechnicalRequirements}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Task.UIRequirements}}

On the UI side:
{{- range .Task.UIRequirements}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Context}}

Relevant notes from the Lovable documentation:
{{- range .Context}}
- {{.Excerpt}}
{{- end}}
{{- end}}

Use the Knowledge Base and keep changes incremental.
`,

	"lovable_skeleton": `# Lovable App Skeleton: {{.Project.Name}}

## Context
{{.Project.Description}}
{{- if .Project.TargetAudience}}
Built for: {{.Project.TargetAudience}}.
{{- end}}

## Task
Scaffold the application structure. {{.Task.Description}}

Set up routing, layout shell and placeholder pages only. No feature
logic yet.
{{- if .Project.TechStack}}

## Stack
{{- range .Project.TechStack}}
- {{.}}
{{- end}}
{{- end}}

## Guidelines
- React with TypeScript, Tailwind CSS and shadcn/ui components
- Supabase for auth and data from the start
- Mobile-first responsive layout
{{- range .Profile.Constraints}}
- {{.}}
{{- end}}
{{- if .Context}}

## Documentation Notes
{{- range .Context}}
> {{.Excerpt}}
{{- end}}
{{- end}}

## Constraints
Do not add features beyond the skeleton. Each page gets a heading and
an empty state.
`,

	"lovable_ui": `# Lovable Page UI: {{.Project.Name}}

## Task
Design the interface for this step. {{.Task.Description}}
{{- if .Task.UIRequirements}}

**UI Requirements:**
{{- range .Task.UIRequirements}}
- {{.}}
{{- end}}
{{- end}}

## Guidelines
- Compose from shadcn/ui primitives, style with Tailwind
- Handle loading, empty and error states for every view
- Keep components small and colocated with their page
{{- if .Context}}

## Documentation Notes
{{- range .Context}}
> {{.Excerpt}}
{{- end}}
{{- end}}
`,

	"lovable_flow": `# Lovable Flow Wiring: {{.Project.Name}}

## Task
Connect the screens and data. {{.Task.Description}}
{{- if .Task.TechnicalRequirements}}

**Technical Requirements:**
{{- range .Task.TechnicalRequirements}}
- {{.}}
{{- end}}
{{- end}}

## Guidelines
- Wire navigation between existing pages, do not restyle them
- Hook forms and lists to Supabase queries and mutations
- Surface errors with toasts, never silent failures
{{- if .Context}}

## Documentation Notes
{{- range .Context}}
> {{.Excerpt}}
{{- end}}
{{- end}}
`,

	"bolt": `# Bolt.new: {{.Project.Name}} ({{.StageTitle}})

{{.Project.Description}}

## Task
{{.Task.Description}}
{{- if .Task.TechnicalRequirements}}

**Technical Requirements:**
{{- range .Task.TechnicalRequirements}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Context}}

## Documentation Notes
{{- range .Context}}
> {{.Excerpt}}
{{- end}}
{{- end}}

## Constraints
- Browser-only WebContainer environment, no native binaries
- Target specific files when asking for changes
`,

	"bolt_architecture": `# Bolt.new Architecture: {{.Project.Name}}

## Overview
{{.Project.Description}}

## Task
Lay out the full project structure before writing feature code.
{{.Task.Description}}
{{- if .Project.TechStack}}

## Stack
{{- range .Project.TechStack}}
- {{.}}
{{- end}}
{{- end}}

## Deliverables
- Directory layout with every planned module named
- Entry point, routing and shared state decided up front
- Dependency list kept browser-compatible
{{- if .Context}}

## Documentation Notes
{{- range .Context}}
> {{.Excerpt}}
{{- end}}
{{- end}}
`,

	"cursor": `{{.Task.Description}}

Project context: {{.Project.Name}}. {{.Project.Description}}
{{- if .Task.TechnicalRequirements}}

Requirements:
{{- range .Task.TechnicalRequirements}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Context}}

Reference notes:
{{- range .Context}}
- {{.Excerpt}}
{{- end}}
{{- end}}

Keep the change scoped; reference files explicitly when you need me to
look at something.
`,
}
