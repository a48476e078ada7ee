package driving

import (
	"context"

	"github.com/relnote-labs/relnotes-cli/internal/core/domain"
)

// Aggregator drives the release-note aggregation pipeline.
type Aggregator interface {
	// Aggregate fetches the release history for a repository, selects the
	// requested releases, merges their notes and renders one markdown
	// document. The pipeline is pure: re-running with the same inputs
	// yields byte-identical output.
	Aggregate(ctx context.Context, req AggregateRequest) (*AggregateResult, error)

	// Sections returns the top-level sections of a single release body,
	// keyed by heading text. Only depth-1 and depth-2 headings divide
	// sections here; deeper headings stay in the content.
	Sections(ctx context.Context, owner, repo, tag string) (map[string][]string, error)
}

// AggregateRequest describes one aggregation run.
type AggregateRequest struct {
	// Owner is the repository owner (user or organisation).
	Owner string

	// Repo is the repository name.
	Repo string

	// Selection chooses which releases to aggregate.
	Selection domain.Selection

	// MergeHeadings collapses textually identical lines under common
	// headings instead of keeping versions separate.
	MergeHeadings bool
}

// AggregateResult is the outcome of an aggregation run.
type AggregateResult struct {
	// Markdown is the rendered document.
	Markdown string

	// ReleaseCount is the number of releases that were aggregated.
	ReleaseCount int
}
