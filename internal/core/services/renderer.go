package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/relnote-labs/relnotes-cli/internal/core/domain"
)

// sectionNames returns a section index's names sorted ascending, with the
// literal name "Uncategorized" forced after every other section regardless
// of its alphabetical position.
func sectionNames[T any](sections map[string][]T) []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		if names[i] == UncategorizedSection {
			return false
		}
		if names[j] == UncategorizedSection {
			return true
		}
		return names[i] < names[j]
	})
	return names
}

// RenderByVersion renders a version-separated merge as a markdown document.
//
// Each section lists its releases as third-level headings of the form
// "version (YYYY-MM-DD)", newest first. Group order is re-derived here
// rather than inherited from the merger: groups sort by date descending,
// with same-day ties broken by semver-aware tag comparison, newest tag
// first, so output is deterministic across runs.
func RenderByVersion(merged map[string][]MergedVersionItem) string {
	var b strings.Builder
	b.WriteString("# Aggregated Release Notes\n\n")

	for _, name := range sectionNames(merged) {
		fmt.Fprintf(&b, "## %s\n\n", name)

		type versionKey struct {
			version string
			date    time.Time
		}

		groups := make(map[versionKey][]string)
		var order []versionKey
		for _, item := range merged[name] {
			key := versionKey{version: item.Version, date: item.Date}
			if _, ok := groups[key]; !ok {
				order = append(order, key)
			}
			groups[key] = append(groups[key], item.Content)
		}

		sort.SliceStable(order, func(i, j int) bool {
			if !order[i].date.Equal(order[j].date) {
				return order[i].date.After(order[j].date)
			}
			return domain.CompareTags(order[i].version, order[j].version) > 0
		})

		for _, key := range order {
			fmt.Fprintf(&b, "### %s (%s)\n\n", key.version, key.date.Format("2006-01-02"))
			for _, content := range groups[key] {
				b.WriteString(content)
				b.WriteByte('\n')
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// RenderByHeading renders a heading-deduplicated merge as a markdown
// document. Items keep the order produced by MergeByHeading; each content
// line is followed by a provenance annotation naming the contributing
// versions, sorted lexically.
func RenderByHeading(merged map[string][]MergedHeadingItem) string {
	var b strings.Builder
	b.WriteString("# Aggregated Release Notes (Merged by Heading)\n\n")

	for _, name := range sectionNames(merged) {
		fmt.Fprintf(&b, "## %s\n\n", name)

		for _, item := range merged[name] {
			b.WriteString(item.Content)
			b.WriteByte('\n')

			switch {
			case len(item.Sources) > 1:
				sorted := append([]string(nil), item.Sources...)
				sort.Strings(sorted)
				fmt.Fprintf(&b, "*(Present in versions: %s)*\n\n", strings.Join(sorted, ", "))
			case len(item.Sources) == 1:
				fmt.Fprintf(&b, "*(From version: %s)*\n\n", item.Sources[0])
			default:
				b.WriteByte('\n')
			}
		}

		b.WriteByte('\n')
	}

	return b.String()
}
