package driven

import (
	"context"

	"github.com/relnote-labs/relnotes-cli/internal/core/domain"
)

// ReleaseSource fetches published releases from a hosting provider.
type ReleaseSource interface {
	// ListReleases returns every release of a repository, sorted newest
	// first by publish timestamp. The sort must be stable so retrieval
	// order breaks ties between releases published at the same instant.
	ListReleases(ctx context.Context, owner, repo string) ([]domain.Release, error)
}
