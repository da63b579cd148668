package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the documentation index",
	Long: `Loads the documentation tree, chunks and embeds every file, and
replaces the persistent vector index. Run this after adding or updating
documentation; generation works without an index but produces weaker
prompts.`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return fmt.Errorf("index %w", errNotConfigured)
	}

	stats, err := indexService.Rebuild(cmd.Context())
	if err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}

	cmd.Printf("Indexed %d documents into %d chunks", stats.Documents, stats.Chunks)
	if stats.Skipped > 0 {
		cmd.Printf(" (%d files skipped)", stats.Skipped)
	}
	cmd.Println()
	return nil
}
