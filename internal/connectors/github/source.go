package github

import (
	"context"
	"sort"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/relnote-labs/relnotes-cli/internal/core/domain"
	"github.com/relnote-labs/relnotes-cli/internal/core/ports/driven"
	"github.com/relnote-labs/relnotes-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.ReleaseSource = (*Source)(nil)

// Source exposes a repository's release history through the ReleaseSource
// port.
type Source struct {
	client *Client
}

// NewSource creates a release source. An empty token selects
// unauthenticated access.
func NewSource(ctx context.Context, token string) *Source {
	if token == "" {
		logger.Debug("No token configured, using unauthenticated GitHub access")
		return &Source{client: NewClient()}
	}
	return &Source{client: NewClientWithToken(ctx, token)}
}

// NewSourceWithClient creates a release source around an existing client.
func NewSourceWithClient(client *Client) *Source {
	return &Source{client: client}
}

// ListReleases implements driven.ReleaseSource. Releases are mapped to
// domain records and stably sorted newest first by publish timestamp, so
// retrieval order breaks ties. Draft releases have no publish timestamp
// and are skipped.
func (s *Source) ListReleases(ctx context.Context, owner, repo string) ([]domain.Release, error) {
	fetched, err := s.client.ListReleases(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	releases := make([]domain.Release, 0, len(fetched))
	published := make([]time.Time, 0, len(fetched))
	for _, rel := range fetched {
		if rel.PublishedAt == nil {
			logger.Debug("Skipping draft release %q", rel.GetTagName())
			continue
		}
		releases = append(releases, toRelease(rel))
		published = append(published, rel.PublishedAt.Time)
	}

	sortReleasesByPublished(releases, published)
	return releases, nil
}

// toRelease maps a go-github release to the domain record.
func toRelease(rel *gh.RepositoryRelease) domain.Release {
	return domain.Release{
		TagName:     rel.GetTagName(),
		Name:        rel.GetName(),
		Body:        rel.GetBody(),
		PublishedAt: rel.GetPublishedAt().Format(time.RFC3339),
		Prerelease:  rel.GetPrerelease(),
	}
}

// sortReleasesByPublished stably sorts releases newest first using the
// already-parsed timestamps that arrived with them.
func sortReleasesByPublished(releases []domain.Release, published []time.Time) {
	type dated struct {
		release domain.Release
		at      time.Time
	}

	entries := make([]dated, len(releases))
	for i := range releases {
		entries[i] = dated{release: releases[i], at: published[i]}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].at.After(entries[j].at)
	})

	for i := range entries {
		releases[i] = entries[i].release
	}
}
