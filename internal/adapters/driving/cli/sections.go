package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var (
	sectionsOwner string
	sectionsRepo  string
	sectionsToken string
)

var sectionsCmd = &cobra.Command{
	Use:   "sections [tag]",
	Short: "Preview the sections of one release body",
	Long: `Splits a single release body on its top-level (depth 1-2) headings and
prints each section with its content, including deeper sub-headings.
Useful for inspecting how a release will contribute to an aggregation.`,
	Args: cobra.ExactArgs(1),
	RunE: runSections,
}

func init() {
	sectionsCmd.Flags().StringVarP(&sectionsOwner, "owner", "o", "", "repository owner (user or organisation)")
	sectionsCmd.Flags().StringVarP(&sectionsRepo, "repo", "r", "", "repository name")
	sectionsCmd.Flags().StringVarP(&sectionsToken, "token", "t", "", "GitHub access token")

	_ = sectionsCmd.MarkFlagRequired("owner")
	_ = sectionsCmd.MarkFlagRequired("repo")

	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	if newAggregator == nil {
		return errors.New("aggregator not configured")
	}

	tag := args[0]
	ctx := context.Background()
	aggregator := newAggregator(ctx, resolveToken(sectionsToken))

	sections, err := aggregator.Sections(ctx, sectionsOwner, sectionsRepo, tag)
	if err != nil {
		return fmt.Errorf("sections failed: %w", err)
	}

	if len(sections) == 0 {
		cmd.Printf("Release %s has no sections.\n", tag)
		return nil
	}

	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd.Printf("## %s\n", name)
		for _, line := range sections[name] {
			cmd.Println(line)
		}
		cmd.Println()
	}
	return nil
}
