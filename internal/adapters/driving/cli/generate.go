package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
)

var (
	generateTool        string
	generateStage       string
	generateTaskType    string
	generateDescription string
	generateProject     string
	generateProjectDesc string
	generateTechStack   []string
	generateAudience    string
	generateTechReqs    []string
	generateUIReqs      []string
	generateConstraints []string
	generateBatchFile   string
	generateOutput      string
	generateJSON        bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Assemble a prompt for a tool and stage",
	Long: `Assembles a development prompt for the target tool, enriched with
retrieved documentation when an index has been built.

Single prompt:
  promptsmith generate --tool lovable --stage app_skeleton \
    --task-type task_management_app --description "Team task dashboard" \
    --project TaskFlow

Batch mode reads one request or an array of requests from a JSON file:
  promptsmith generate --batch requests.json --json`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateTool, "tool", "t", "", "target tool identifier (required)")
	f.StringVarP(&generateStage, "stage", "s", "", "pipeline stage (default app_skeleton)")
	f.StringVar(&generateTaskType, "task-type", "", "short task type, e.g. user_authentication")
	f.StringVarP(&generateDescription, "description", "d", "", "free-text task description")
	f.StringVarP(&generateProject, "project", "p", "", "project name")
	f.StringVar(&generateProjectDesc, "project-description", "", "project summary")
	f.StringSliceVar(&generateTechStack, "tech", nil, "tech stack entries")
	f.StringVar(&generateAudience, "audience", "", "target audience")
	f.StringSliceVar(&generateTechReqs, "tech-req", nil, "technical requirements")
	f.StringSliceVar(&generateUIReqs, "ui-req", nil, "UI requirements")
	f.StringSliceVar(&generateConstraints, "constraint", nil, "task constraints")
	f.StringVar(&generateBatchFile, "batch", "", "JSON file with one request or an array of requests")
	f.StringVarP(&generateOutput, "output", "o", "", "write the prompt (or JSON) to a file")
	f.BoolVar(&generateJSON, "json", false, "output the full result as JSON")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if assemblyService == nil {
		return fmt.Errorf("assembly %w", errNotConfigured)
	}

	if generateBatchFile != "" {
		return runGenerateBatch(cmd)
	}

	req := domain.PromptRequest{Tool: generateTool, Stage: generateStage}
	req.Project.Name = generateProject
	req.Project.Description = generateProjectDesc
	req.Project.TechStack = generateTechStack
	req.Project.TargetAudience = generateAudience
	req.Task.Type = generateTaskType
	req.Task.Description = generateDescription
	req.Task.TechnicalRequirements = generateTechReqs
	req.Task.UIRequirements = generateUIReqs
	req.Task.Constraints = generateConstraints

	result, err := generateOne(cmd, req)
	if err != nil {
		return err
	}

	if generateJSON {
		return writeOutput(cmd, resultJSON(result))
	}
	if generateOutput != "" {
		if err := writeOutput(cmd, result.Prompt); err != nil {
			return err
		}
		printResultSummary(cmd, result)
		return nil
	}
	cmd.Println(result.Prompt)
	printResultSummary(cmd, result)
	return nil
}

func runGenerateBatch(cmd *cobra.Command) error {
	data, err := os.ReadFile(generateBatchFile)
	if err != nil {
		return fmt.Errorf("read batch file: %w", err)
	}

	var requests []domain.PromptRequest
	if err := json.Unmarshal(data, &requests); err != nil {
		// A single object is accepted too.
		var single domain.PromptRequest
		if err := json.Unmarshal(data, &single); err != nil {
			return fmt.Errorf("parse batch file: %w", err)
		}
		requests = []domain.PromptRequest{single}
	}

	results := make([]*domain.PromptResult, 0, len(requests))
	for i, req := range requests {
		result, err := generateOne(cmd, req)
		if err != nil {
			return fmt.Errorf("request %d: %w", i+1, err)
		}
		results = append(results, result)
	}

	data, err = json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	return writeOutput(cmd, string(data))
}

// generateOne converts a request, resolves the tool and runs assembly.
func generateOne(cmd *cobra.Command, req domain.PromptRequest) (*domain.PromptResult, error) {
	tool, err := domain.ParseTool(req.Tool)
	if err != nil {
		return nil, toolError(req.Tool, err)
	}

	stage := domain.StageAppSkeleton
	if req.Stage != "" {
		stage, err = domain.ParseStage(req.Stage)
		if err != nil {
			return nil, fmt.Errorf("%w (valid: %s)", err, stageNames())
		}
	}

	if req.Task.Type == "" || req.Task.Description == "" {
		return nil, fmt.Errorf("%w: --task-type and --description are required", domain.ErrInvalidInput)
	}

	task := domain.TaskContext{
		TaskType:              req.Task.Type,
		ProjectName:           req.Project.Name,
		Description:           req.Task.Description,
		Stage:                 stage,
		TechnicalRequirements: req.Task.TechnicalRequirements,
		UIRequirements:        req.Task.UIRequirements,
		Constraints:           req.Task.Constraints,
		TargetTool:            tool,
	}
	project := domain.ProjectInfo{
		Name:           req.Project.Name,
		Description:    req.Project.Description,
		TechStack:      req.Project.TechStack,
		TargetAudience: req.Project.TargetAudience,
	}

	return assemblyService.Generate(cmd.Context(), task, project)
}

// toolError decorates an unknown-tool failure with fuzzy suggestions.
func toolError(id string, err error) error {
	if !errors.Is(err, domain.ErrUnknownTool) || registryService == nil {
		return err
	}
	suggestions := registryService.Suggest(id)
	if len(suggestions) == 0 {
		return fmt.Errorf("%w (run 'promptsmith tools' for the list)", err)
	}
	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = string(s)
	}
	return fmt.Errorf("%w, did you mean %s?", err, strings.Join(names, ", "))
}

func stageNames() string {
	stages := domain.AllStages()
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func resultJSON(result *domain.PromptResult) string {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// writeOutput sends text to --output or stdout.
func writeOutput(cmd *cobra.Command, text string) error {
	if generateOutput == "" {
		cmd.Println(text)
		return nil
	}
	if err := os.WriteFile(generateOutput, []byte(text), 0600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	cmd.Printf("Wrote %s\n", generateOutput)
	return nil
}

// printResultSummary prints scoring metadata after the prompt text.
func printResultSummary(cmd *cobra.Command, result *domain.PromptResult) {
	cmd.Println()
	cmd.Printf("Confidence: %.2f | Strategy: %s | Validation: %d/100\n",
		result.ConfidenceScore, result.AppliedStrategy, result.Validation.Score)
	if result.NextSuggestedStage != "" {
		cmd.Printf("Next stage: %s\n", result.NextSuggestedStage)
	}
	if len(result.Sources) > 0 {
		cmd.Printf("Sources: %s\n", strings.Join(result.Sources, ", "))
	}
	for _, hint := range result.EnhancementSuggestions {
		cmd.Printf("Hint: %s\n", hint)
	}
}
