package services

import (
	"sort"
	"strings"

	"github.com/relnote-labs/relnotes-cli/internal/core/domain"
)

// MergedHeadingItem is one distinct content line together with the releases
// that contributed it.
type MergedHeadingItem struct {
	// Content is the trimmed content line. Within one section, content
	// strings are pairwise distinct.
	Content string

	// Sources lists the contributing tags in first-encountered order.
	// The list is not deduplicated: a release that repeats a line adds
	// its tag once per occurrence.
	Sources []string
}

// sectionAccumulator tracks distinct content lines for one section, keeping
// first-encountered order explicit so output never depends on map iteration.
type sectionAccumulator struct {
	order   []string
	sources map[string][]string
}

// MergeByHeading collapses textually identical lines (after trimming) across
// the selected releases into one item per distinct line per section.
//
// Within each section, items are sorted by number of sources descending so
// the most broadly confirmed changes surface first, with ties broken by
// content ascending.
func MergeByHeading(releases []domain.Release) map[string][]MergedHeadingItem {
	bySection := make(map[string]*sectionAccumulator)

	for _, rel := range releases {
		if rel.Body == "" {
			continue
		}

		for name, lines := range ParseSections(rel.Body) {
			acc := bySection[name]
			if acc == nil {
				acc = &sectionAccumulator{sources: make(map[string][]string)}
				bySection[name] = acc
			}

			for _, line := range lines {
				content := strings.TrimSpace(line)
				if _, seen := acc.sources[content]; !seen {
					acc.order = append(acc.order, content)
				}
				acc.sources[content] = append(acc.sources[content], rel.TagName)
			}
		}
	}

	merged := make(map[string][]MergedHeadingItem, len(bySection))
	for name, acc := range bySection {
		items := make([]MergedHeadingItem, 0, len(acc.order))
		for _, content := range acc.order {
			items = append(items, MergedHeadingItem{
				Content: content,
				Sources: acc.sources[content],
			})
		}

		sort.SliceStable(items, func(i, j int) bool {
			if len(items[i].Sources) != len(items[j].Sources) {
				return len(items[i].Sources) > len(items[j].Sources)
			}
			return items[i].Content < items[j].Content
		})

		merged[name] = items
	}

	return merged
}
