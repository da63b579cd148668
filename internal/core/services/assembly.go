package services

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driven"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driving"
	"github.com/promptsmith/promptsmith-cli/internal/logger"
)

// Ensure AssemblyService implements the interface.
var _ driving.AssemblyService = (*AssemblyService)(nil)

// Retrieval and scoring defaults.
const (
	DefaultRetrievalK         = 5
	DefaultRelevanceThreshold = 0.3

	// maxContextSnippets bounds how many retrieved chunks make it into
	// the rendered prompt.
	maxContextSnippets = 3

	// maxExcerptLength truncates each snippet for the prompt body.
	maxExcerptLength = 300

	// fallbackConfidence is the fixed score of the minimal template-free
	// prompt used when every template in the chain fails to render.
	fallbackConfidence = 0.4
)

// Confidence signal weights. Confidence starts at the base and
// accumulates independent signals, clamped to [0,1].
const (
	confidenceBase           = 0.5
	confidenceRetrieved      = 0.2
	confidenceRichRetrieval  = 0.1
	confidenceUseCaseExact   = 0.2
	confidenceUseCasePartial = 0.1
	confidenceTechReqs       = 0.1
	confidenceUIReqs         = 0.1
)

// AssemblyOption configures an AssemblyService.
type AssemblyOption func(*AssemblyService)

// WithRetrievalK sets how many chunks are fetched per query.
func WithRetrievalK(k int) AssemblyOption {
	return func(s *AssemblyService) {
		if k > 0 {
			s.retrievalK = k
		}
	}
}

// WithRelevanceThreshold sets the similarity cutoff for the best hit.
func WithRelevanceThreshold(t float64) AssemblyOption {
	return func(s *AssemblyService) {
		if t >= 0 {
			s.threshold = t
		}
	}
}

// AssemblyService assembles prompts from task context, project info,
// tool profiles and retrieved documentation.
//
// The embedder and index are optional: without them (or with an empty
// index) assembly degrades to template-only prompts with lower
// confidence, it never fails.
type AssemblyService struct {
	registry  driving.RegistryService
	templates driven.TemplateStore
	embedder  driven.EmbeddingService
	index     driven.VectorIndex

	retrievalK int
	threshold  float64
}

// NewAssemblyService creates an assembly service. embedder and index
// may be nil for retrieval-free operation.
func NewAssemblyService(
	registry driving.RegistryService,
	templates driven.TemplateStore,
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
	opts ...AssemblyOption,
) *AssemblyService {
	s := &AssemblyService{
		registry:   registry,
		templates:  templates,
		embedder:   embedder,
		index:      index,
		retrievalK: DefaultRetrievalK,
		threshold:  DefaultRelevanceThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// contextSnippet is one retrieved excerpt handed to the template.
type contextSnippet struct {
	Source  string
	Excerpt string
}

// templateData is the rendering context shared by every template.
type templateData struct {
	Project    domain.ProjectInfo
	Task       domain.TaskContext
	Profile    domain.ToolProfile
	StageTitle string
	Context    []contextSnippet
}

// Generate assembles a prompt for the given task and project.
func (s *AssemblyService) Generate(ctx context.Context, task domain.TaskContext, project domain.ProjectInfo) (*domain.PromptResult, error) {
	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("task context: %w", err)
	}
	if task.Stage == "" {
		task.Stage = domain.StageAppSkeleton
	}
	if !task.Stage.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStage, task.Stage)
	}

	logger.Section("Prompt Assembly")
	logger.Debug("tool=%s stage=%s task=%s", task.TargetTool, task.Stage, task.TaskType)

	profile := s.registry.GetDefault(task.TargetTool)
	retrieved := s.retrieve(ctx, task, profile)

	data := templateData{
		Project:    project,
		Task:       task,
		Profile:    profile,
		StageTitle: task.Stage.Title(),
		Context:    snippetsFrom(retrieved),
	}

	result := &domain.PromptResult{
		Stage:   task.Stage,
		Tool:    task.TargetTool,
		Sources: sourcesFrom(retrieved),
	}
	if next, ok := task.Stage.Next(); ok {
		result.NextSuggestedStage = next
	}

	strategy := selectStrategy(profile, task)
	prompt, tmplName, ok := s.render(task, profile, data)
	if ok {
		result.Prompt = prompt
		result.AppliedStrategy = strategy + "/" + tmplName
		result.ConfidenceScore = confidence(task, profile, len(retrieved))
	} else {
		result.Prompt = fallbackPrompt(task, project, profile)
		result.AppliedStrategy = "fallback"
		result.ConfidenceScore = fallbackConfidence
	}

	result.EnhancementSuggestions = enhancements(task, len(retrieved))
	result.Validation = validatePrompt(result.Prompt, profile)

	logger.Debug("assembled prompt: %d chars, confidence %.2f, strategy %s",
		len(result.Prompt), result.ConfidenceScore, result.AppliedStrategy)
	return result, nil
}

// ValidatePrompt runs heuristic validation on arbitrary prompt text.
func (s *AssemblyService) ValidatePrompt(prompt string, tool domain.SupportedTool) domain.ValidationReport {
	return validatePrompt(prompt, s.registry.GetDefault(tool))
}

// retrieve fetches relevant documentation chunks. Any retrieval failure
// degrades to an empty context with a warning.
func (s *AssemblyService) retrieve(ctx context.Context, task domain.TaskContext, profile domain.ToolProfile) []domain.ScoredChunk {
	if s.embedder == nil || s.index == nil {
		return nil
	}

	query := strings.TrimSpace(strings.Join([]string{
		task.TaskType, task.Description, task.Stage.Title(),
	}, " "))

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		logger.Warn("embedding query failed, generating without context: %v", err)
		return nil
	}

	retrieved, err := s.index.Query(ctx, embedding, s.retrievalK, driven.QueryOptions{
		Tool:      profile.Namespace(),
		Threshold: s.threshold,
	})
	if err != nil {
		logger.Warn("vector query failed, generating without context: %v", err)
		return nil
	}

	logger.Debug("retrieved %d chunks for %q", len(retrieved), query)
	return retrieved
}

// render walks the template fallback chain and returns the first
// successful render.
func (s *AssemblyService) render(task domain.TaskContext, profile domain.ToolProfile, data templateData) (prompt, name string, ok bool) {
	chain := s.templates.Chain(task.TargetTool, task.Stage, profile.StageTemplates[task.Stage])
	for _, candidate := range chain {
		tmpl, err := template.New(candidate.Name).Parse(candidate.Text)
		if err != nil {
			logger.Warn("template %s failed to parse: %v", candidate.Name, err)
			continue
		}
		var buf strings.Builder
		if err := tmpl.Execute(&buf, data); err != nil {
			logger.Warn("template %s failed to render: %v", candidate.Name, err)
			continue
		}
		return buf.String(), candidate.Name, true
	}
	logger.Warn("every template failed for %s/%s, using minimal prompt", task.TargetTool, task.Stage)
	return "", "", false
}

// fallbackPrompt is the minimal prompt used when no template renders.
func fallbackPrompt(task domain.TaskContext, project domain.ProjectInfo, profile domain.ToolProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Using %s, work on the %s stage of %s.\n\n",
		profile.DisplayName, task.Stage.Title(), project.Name)
	if project.Description != "" {
		fmt.Fprintf(&b, "Project: %s\n\n", project.Description)
	}
	fmt.Fprintf(&b, "Task: %s\n", task.Description)
	for _, req := range task.TechnicalRequirements {
		fmt.Fprintf(&b, "- %s\n", req)
	}
	for _, req := range task.UIRequirements {
		fmt.Fprintf(&b, "- %s\n", req)
	}
	return b.String()
}

// selectStrategy picks the profile strategy whose use cases best match
// the task type: exact match, then substring. Without a match, skeleton
// work and heavily specified tasks get the structured form and lighter
// tasks the conversational one, preferring a type the profile actually
// declares.
func selectStrategy(profile domain.ToolProfile, task domain.TaskContext) string {
	for _, strat := range profile.Strategies {
		for _, uc := range strat.UseCases {
			if uc == task.TaskType {
				return strat.Type
			}
		}
	}
	for _, strat := range profile.Strategies {
		for _, uc := range strat.UseCases {
			if strings.Contains(task.TaskType, uc) || strings.Contains(uc, task.TaskType) {
				return strat.Type
			}
		}
	}

	preferred := "conversational"
	if task.Stage == domain.StageAppSkeleton || len(task.TechnicalRequirements) > 5 {
		preferred = "structured"
	}
	for _, strat := range profile.Strategies {
		if strat.Type == preferred {
			return preferred
		}
	}

	var best string
	var bestEffectiveness float64
	for _, strat := range profile.Strategies {
		if strat.Effectiveness > bestEffectiveness {
			bestEffectiveness = strat.Effectiveness
			best = strat.Type
		}
	}
	if best == "" {
		best = preferred
	}
	return best
}

// confidence accumulates independent input signals over the base score.
func confidence(task domain.TaskContext, profile domain.ToolProfile, retrieved int) float64 {
	score := confidenceBase
	if retrieved > 0 {
		score += confidenceRetrieved
	}
	if retrieved >= maxContextSnippets {
		score += confidenceRichRetrieval
	}
	if profile.HasUseCase(task.TaskType) {
		score += confidenceUseCaseExact
	} else if hasPartialUseCase(profile, task.TaskType) {
		score += confidenceUseCasePartial
	}
	if len(task.TechnicalRequirements) > 0 {
		score += confidenceTechReqs
	}
	if len(task.UIRequirements) > 0 {
		score += confidenceUIReqs
	}

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

// hasPartialUseCase reports a substring relationship between the task
// type and any preferred use case.
func hasPartialUseCase(profile domain.ToolProfile, taskType string) bool {
	if taskType == "" {
		return false
	}
	for _, uc := range profile.PreferredUseCases {
		if strings.Contains(taskType, uc) || strings.Contains(uc, taskType) {
			return true
		}
	}
	return false
}

// snippetsFrom truncates the top retrieved chunks for the prompt body.
func snippetsFrom(retrieved []domain.ScoredChunk) []contextSnippet {
	n := len(retrieved)
	if n > maxContextSnippets {
		n = maxContextSnippets
	}
	snippets := make([]contextSnippet, 0, n)
	for _, sc := range retrieved[:n] {
		excerpt := strings.TrimSpace(sc.Chunk.Content)
		if len(excerpt) > maxExcerptLength {
			excerpt = excerpt[:maxExcerptLength] + "..."
		}
		snippets = append(snippets, contextSnippet{
			Source:  sc.Chunk.SourcePath,
			Excerpt: excerpt,
		})
	}
	return snippets
}

// sourcesFrom lists distinct source paths of the retrieved chunks.
func sourcesFrom(retrieved []domain.ScoredChunk) []string {
	seen := make(map[string]bool, len(retrieved))
	sources := make([]string, 0, len(retrieved))
	for _, sc := range retrieved {
		if seen[sc.Chunk.SourcePath] {
			continue
		}
		seen[sc.Chunk.SourcePath] = true
		sources = append(sources, sc.Chunk.SourcePath)
	}
	return sources
}

// enhancements builds non-fatal hints for improving the request.
func enhancements(task domain.TaskContext, retrieved int) []string {
	var hints []string
	if len(task.TechnicalRequirements) == 0 {
		hints = append(hints, "add technical requirements to sharpen the implementation details")
	}
	if len(task.UIRequirements) == 0 && task.Stage == domain.StagePageUI {
		hints = append(hints, "add UI requirements so the design matches your expectations")
	}
	if retrieved == 0 {
		hints = append(hints, "no documentation context was found; run the index command to build it")
	}
	if len(task.Description) < 20 {
		hints = append(hints, "describe the task in more detail for a richer prompt")
	}
	return hints
}
