// Package cli implements the command line surface. Commands run
// against services injected via Configure; they hold no business logic
// of their own.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driving"
	"github.com/promptsmith/promptsmith-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	flagVerbose bool
	flagConfig  string
)

// Services injected by Configure.
var (
	assemblyService driving.AssemblyService
	indexService    driving.IndexService
	registryService driving.RegistryService
)

// configureFn wires the services once flags are parsed. Registered by
// main via OnConfigure.
var configureFn func(configPath string) error

// errNotConfigured is returned when a command runs without its service.
var errNotConfigured = errors.New("service not configured")

var rootCmd = &cobra.Command{
	Use:   "promptsmith",
	Short: "Generate tool-aware prompts for AI app builders",
	Long: `promptsmith assembles stage-aware prompts for AI coding tools such as
Lovable, Bolt and Cursor, enriched with retrieved snippets from the
tools' own documentation.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(flagVerbose)
		if configureFn != nil {
			return configureFn(flagConfig)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose diagnostics on stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config-dir", "", "config directory (default ~/.promptsmith)")
}

// OnConfigure registers the wiring callback invoked after flag parsing
// and before any command runs.
func OnConfigure(fn func(configPath string) error) {
	configureFn = fn
}

// Configure injects the services the commands run against.
func Configure(assembly driving.AssemblyService, index driving.IndexService, registry driving.RegistryService) {
	assemblyService = assembly
	indexService = index
	registryService = registry
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the selected command.
func Execute() error {
	return rootCmd.Execute()
}
