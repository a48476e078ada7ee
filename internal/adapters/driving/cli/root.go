// Package cli implements the cobra command tree for relnotes.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/relnote-labs/relnotes-cli/internal/core/ports/driven"
	"github.com/relnote-labs/relnotes-cli/internal/core/ports/driving"
	"github.com/relnote-labs/relnotes-cli/internal/logger"
)

// AggregatorFactory builds an Aggregator for a resolved access token.
// Commands resolve the token from flags, config and environment before
// constructing the service.
type AggregatorFactory func(ctx context.Context, token string) driving.Aggregator

var (
	// Injected by Setup before Execute runs.
	newAggregator AggregatorFactory
	configStore   driven.ConfigStore

	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "relnotes",
	Short: "Aggregate GitHub release notes between versions",
	Long: `relnotes fetches the release history of a GitHub repository and merges
the per-version release notes into one consolidated markdown document.

Releases can be selected by explicit tag list, by tag range, or all at
once. Notes merge either version-separated (every version listed under
each heading) or deduplicated by heading (identical lines collapsed with
provenance annotations).`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging to stderr")
}

// Setup wires the driving ports used by the commands.
// Must be called before Execute.
func Setup(factory AggregatorFactory, cfg driven.ConfigStore, ver string) {
	newAggregator = factory
	configStore = cfg
	if ver != "" {
		version = ver
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
