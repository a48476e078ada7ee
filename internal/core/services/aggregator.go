package services

import (
	"context"
	"fmt"

	"github.com/relnote-labs/relnotes-cli/internal/core/domain"
	"github.com/relnote-labs/relnotes-cli/internal/core/ports/driven"
	"github.com/relnote-labs/relnotes-cli/internal/core/ports/driving"
	"github.com/relnote-labs/relnotes-cli/internal/logger"
)

// Ensure AggregatorService implements the interface.
var _ driving.Aggregator = (*AggregatorService)(nil)

// AggregatorService runs the merge-and-render pipeline: fetch releases,
// select the requested subset, parse bodies into sections, merge, render.
// It holds no state between runs.
type AggregatorService struct {
	source driven.ReleaseSource
}

// NewAggregatorService creates a new aggregator service.
func NewAggregatorService(source driven.ReleaseSource) *AggregatorService {
	return &AggregatorService{source: source}
}

// Aggregate implements driving.Aggregator.
func (s *AggregatorService) Aggregate(
	ctx context.Context,
	req driving.AggregateRequest,
) (*driving.AggregateResult, error) {
	logger.Section("Aggregation")
	logger.Debug("Repository: %s/%s, mode: %s", req.Owner, req.Repo, req.Selection.Mode)

	releases, err := s.source.ListReleases(ctx, req.Owner, req.Repo)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}
	logger.Info("Found %d releases for %s/%s", len(releases), req.Owner, req.Repo)

	selected, err := SelectReleases(releases, req.Selection)
	if err != nil {
		return nil, err
	}
	logger.Info("Aggregating %d releases", len(selected))

	var markdown string
	if req.MergeHeadings {
		markdown = RenderByHeading(MergeByHeading(selected))
	} else {
		merged, err := MergeByVersion(selected)
		if err != nil {
			return nil, err
		}
		markdown = RenderByVersion(merged)
	}

	return &driving.AggregateResult{
		Markdown:     markdown,
		ReleaseCount: len(selected),
	}, nil
}

// Sections implements driving.Aggregator. It fetches one release body and
// splits it with the shallow depth-1/2 divider rule, preserving deeper
// headings and blank lines inside each section.
func (s *AggregatorService) Sections(
	ctx context.Context,
	owner, repo, tag string,
) (map[string][]string, error) {
	releases, err := s.source.ListReleases(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}

	for _, rel := range releases {
		if rel.TagName == tag {
			return ExtractTopLevelSections(rel.Body), nil
		}
	}

	return nil, &domain.TagNotFoundError{Tag: tag}
}
