package services

import (
	"time"

	"github.com/relnote-labs/relnotes-cli/internal/core/domain"
)

// MergedVersionItem is one content line attributed to the release it came
// from. Identical lines from different releases stay separate items.
type MergedVersionItem struct {
	// Content is the verbatim content line.
	Content string

	// Version is the tag of the contributing release.
	Version string

	// Date is the contributing release's publish date.
	Date time.Time
}

// MergeByVersion combines the parsed sections of the selected releases into
// a section index keyed by heading text, keeping one item per content line
// per release with no deduplication.
//
// Buckets are pre-seeded from the union of section names across all releases
// before population. Item order within a bucket follows the release order of
// the input and, within a release, source-line order.
func MergeByVersion(releases []domain.Release) (map[string][]MergedVersionItem, error) {
	merged := make(map[string][]MergedVersionItem)

	for _, rel := range releases {
		if rel.Body == "" {
			continue
		}
		for name := range ParseSections(rel.Body) {
			if _, ok := merged[name]; !ok {
				merged[name] = nil
			}
		}
	}

	for _, rel := range releases {
		if rel.Body == "" {
			continue
		}

		date, err := rel.PublishedDate()
		if err != nil {
			return nil, err
		}

		for name, lines := range ParseSections(rel.Body) {
			for _, line := range lines {
				merged[name] = append(merged[name], MergedVersionItem{
					Content: line,
					Version: rel.TagName,
					Date:    date,
				})
			}
		}
	}

	return merged, nil
}
