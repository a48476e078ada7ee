package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/relnote-labs/relnotes-cli/internal/core/domain"
	"github.com/relnote-labs/relnotes-cli/internal/core/ports/driving"
	"github.com/relnote-labs/relnotes-cli/internal/postprocessors"
)

// Config keys consulted for defaults.
const (
	keyGitHubToken   = "github.token"
	keyDefaultOutput = "output.path"
)

// envGitHubToken is the fallback environment variable for the token.
const envGitHubToken = "GITHUB_TOKEN"

var (
	aggOwner              string
	aggRepo               string
	aggStartTag           string
	aggEndTag             string
	aggVersions           string
	aggToken              string
	aggOutput             string
	aggIncludePrereleases bool
	aggMergeHeadings      bool
	aggTidy               bool
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Merge release notes into one document",
	Long: `Fetches all releases of a repository and merges the selected release
notes into a single markdown document.

Selection:
  --versions v2.0.0,v1.0.0   explicit tags (re-sorted newest first)
  --start-tag / --end-tag    inclusive range in the release history
  (neither)                  every release

Pre-releases are excluded unless --include-prereleases is set.

Examples:
  relnotes aggregate -o golang -r go --start-tag go1.21.0 --end-tag go1.22.0
  relnotes aggregate -o cli -r cli -v v2.40.0,v2.39.0 --merge-headings`,
	RunE: runAggregate,
}

func init() {
	aggregateCmd.Flags().StringVarP(&aggOwner, "owner", "o", "", "repository owner (user or organisation)")
	aggregateCmd.Flags().StringVarP(&aggRepo, "repo", "r", "", "repository name")
	aggregateCmd.Flags().StringVarP(&aggStartTag, "start-tag", "s", "", "start tag of the range (older version)")
	aggregateCmd.Flags().StringVarP(&aggEndTag, "end-tag", "e", "", "end tag of the range (newer version)")
	aggregateCmd.Flags().StringVarP(&aggVersions, "versions", "v", "", "comma-separated tags to merge (overrides the range)")
	aggregateCmd.Flags().StringVarP(&aggToken, "token", "t", "", "GitHub access token (falls back to config, then $GITHUB_TOKEN)")
	aggregateCmd.Flags().StringVar(&aggOutput, "output", "", `output file path ("-" for stdout)`)
	aggregateCmd.Flags().BoolVar(&aggIncludePrereleases, "include-prereleases", false, "include pre-release versions")
	aggregateCmd.Flags().BoolVarP(&aggMergeHeadings, "merge-headings", "m", false, "collapse identical lines under common headings")
	aggregateCmd.Flags().BoolVar(&aggTidy, "tidy", false, "apply a markdown cleanup pass to the output")

	_ = aggregateCmd.MarkFlagRequired("owner")
	_ = aggregateCmd.MarkFlagRequired("repo")

	rootCmd.AddCommand(aggregateCmd)
}

func runAggregate(cmd *cobra.Command, _ []string) error {
	if newAggregator == nil {
		return errors.New("aggregator not configured")
	}

	ctx := context.Background()
	aggregator := newAggregator(ctx, resolveToken(aggToken))

	req := driving.AggregateRequest{
		Owner:         aggOwner,
		Repo:          aggRepo,
		Selection:     buildSelection(),
		MergeHeadings: aggMergeHeadings,
	}

	cmd.Printf("Fetching release notes for %s/%s\n", aggOwner, aggRepo)

	result, err := aggregator.Aggregate(ctx, req)
	if err != nil {
		return fmt.Errorf("aggregate failed: %w", err)
	}
	if result.ReleaseCount == 0 {
		cmd.Println("No releases found.")
		return nil
	}

	markdown := result.Markdown
	if aggTidy {
		markdown = postprocessors.CleanMarkdown(markdown)
	}

	output := resolveOutput(aggOutput)
	if output == "-" {
		cmd.Print(markdown)
		return nil
	}

	if err := os.WriteFile(output, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("write output file %s: %w", output, err)
	}

	cmd.Printf("Wrote release notes for %d releases to %s\n", result.ReleaseCount, output)
	return nil
}

// buildSelection derives the selection criterion from the flags. An explicit
// version list wins over a tag range; with neither, all releases are taken.
func buildSelection() domain.Selection {
	if aggVersions != "" {
		tags := strings.Split(aggVersions, ",")
		for i := range tags {
			tags[i] = strings.TrimSpace(tags[i])
		}
		return domain.TagList(tags, aggIncludePrereleases)
	}

	if aggStartTag != "" || aggEndTag != "" {
		return domain.TagRange(aggStartTag, aggEndTag, aggIncludePrereleases)
	}

	return domain.AllReleases(aggIncludePrereleases)
}

// resolveToken picks the access token: flag, then config, then environment.
func resolveToken(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configStore != nil {
		if token := configStore.GetString(keyGitHubToken); token != "" {
			return token
		}
	}
	return os.Getenv(envGitHubToken)
}

// resolveOutput picks the output path: flag, then config, then the default.
func resolveOutput(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configStore != nil {
		if path := configStore.GetString(keyDefaultOutput); path != "" {
			return path
		}
	}
	return "aggregated_release_notes.md"
}
