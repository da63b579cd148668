package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptsmith/promptsmith-cli/internal/core/domain"
)

var toolsProjectType string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List supported tools",
	RunE:  runToolsList,
}

var toolsInfoCmd = &cobra.Command{
	Use:   "info [tool]",
	Short: "Show a tool's prompting profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolsInfo,
}

var toolsSuggestCmd = &cobra.Command{
	Use:   "suggest [tool] [project-type]",
	Short: "Suggest tasks for a tool and project type",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runToolsSuggest,
}

func init() {
	toolsSuggestCmd.Flags().StringVar(&toolsProjectType, "type", "", "project type, e.g. web_app, dashboard")
	toolsCmd.AddCommand(toolsInfoCmd)
	toolsCmd.AddCommand(toolsSuggestCmd)
	rootCmd.AddCommand(toolsCmd)
}

func runToolsList(cmd *cobra.Command, _ []string) error {
	if registryService == nil {
		return fmt.Errorf("registry %w", errNotConfigured)
	}

	cmd.Println("Supported tools:")
	for _, tool := range registryService.Tools() {
		profile := registryService.GetDefault(tool)
		cmd.Printf("  %-12s %s\n", tool, profile.DisplayName)
	}
	return nil
}

func runToolsInfo(cmd *cobra.Command, args []string) error {
	if registryService == nil {
		return fmt.Errorf("registry %w", errNotConfigured)
	}

	tool, err := domain.ParseTool(args[0])
	if err != nil {
		return toolError(args[0], err)
	}

	profile, err := registryService.Get(tool)
	if err != nil {
		return err
	}

	cmd.Printf("%s (%s)\n", profile.DisplayName, tool)
	cmd.Printf("  Tone:   %s\n", profile.Tone)
	cmd.Printf("  Format: %s\n", profile.Format)
	if len(profile.PreferredUseCases) > 0 {
		cmd.Printf("  Strong at: %s\n", strings.Join(profile.PreferredUseCases, ", "))
	}
	if len(profile.Strategies) > 0 {
		cmd.Println("  Strategies:")
		for _, s := range profile.Strategies {
			cmd.Printf("    - %s (effectiveness %.2f)\n", s.Type, s.Effectiveness)
		}
	}
	if len(profile.Constraints) > 0 {
		cmd.Println("  Constraints:")
		for _, c := range profile.Constraints {
			cmd.Printf("    - %s\n", c)
		}
	}
	if len(profile.CommonPitfalls) > 0 {
		cmd.Println("  Common pitfalls:")
		for _, p := range profile.CommonPitfalls {
			cmd.Printf("    - %s\n", p)
		}
	}
	return nil
}

func runToolsSuggest(cmd *cobra.Command, args []string) error {
	if registryService == nil {
		return fmt.Errorf("registry %w", errNotConfigured)
	}

	tool, err := domain.ParseTool(args[0])
	if err != nil {
		return toolError(args[0], err)
	}

	projectType := toolsProjectType
	if len(args) == 2 {
		projectType = args[1]
	}

	suggestions := registryService.TaskSuggestions(tool, projectType)
	cmd.Printf("Task ideas for %s:\n", tool)
	for _, s := range suggestions {
		cmd.Printf("  - %s\n", s)
	}
	return nil
}
