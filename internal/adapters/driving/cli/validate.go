package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
)

var validateTool string

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Score an existing prompt for a tool",
	Long: `Runs heuristic validation over prompt text and reports a 0-100
score. Reads the prompt from the given file, or from stdin when no file
is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateTool, "tool", "t", "", "target tool identifier (required)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if assemblyService == nil {
		return fmt.Errorf("assembly %w", errNotConfigured)
	}

	tool, err := domain.ParseTool(validateTool)
	if err != nil {
		return toolError(validateTool, err)
	}

	var data []byte
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read prompt file: %w", err)
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	report := assemblyService.ValidatePrompt(string(data), tool)

	status := "needs work"
	if report.Valid {
		status = "good"
	}
	cmd.Printf("Score: %d/100 (%s)\n", report.Score, status)
	for _, issue := range report.Issues {
		cmd.Printf("Issue: %s\n", issue)
	}
	for _, s := range report.Suggestions {
		cmd.Printf("Suggestion: %s\n", s)
	}
	return nil
}
