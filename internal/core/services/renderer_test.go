package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relnote-labs/relnotes-cli/internal/core/domain"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return date
}

func TestRenderByVersion(t *testing.T) {
	merged := map[string][]MergedVersionItem{
		"Features": {
			{Content: "- Feature B", Version: "v2.0.0", Date: mustDate(t, "2023-02-01")},
			{Content: "- Feature A", Version: "v1.0.0", Date: mustDate(t, "2023-01-01")},
		},
	}

	out := RenderByVersion(merged)

	expected := "# Aggregated Release Notes\n\n" +
		"## Features\n\n" +
		"### v2.0.0 (2023-02-01)\n\n" +
		"- Feature B\n\n" +
		"### v1.0.0 (2023-01-01)\n\n" +
		"- Feature A\n\n"
	assert.Equal(t, expected, out)
}

func TestRenderByVersion_GroupsSortedNewestFirst(t *testing.T) {
	// Arrival order is discarded; groups re-sort by date descending.
	merged := map[string][]MergedVersionItem{
		"Features": {
			{Content: "- old", Version: "v1.0.0", Date: mustDate(t, "2023-01-01")},
			{Content: "- new", Version: "v2.0.0", Date: mustDate(t, "2023-02-01")},
		},
	}

	out := RenderByVersion(merged)

	assert.Less(t,
		strings.Index(out, "### v2.0.0"),
		strings.Index(out, "### v1.0.0"),
	)
}

func TestRenderByVersion_SameDateTieBrokenByTag(t *testing.T) {
	// Two releases published the same day order by tag, newest tag first.
	date := mustDate(t, "2023-05-01")
	merged := map[string][]MergedVersionItem{
		"Features": {
			{Content: "- a", Version: "v1.9.0", Date: date},
			{Content: "- b", Version: "v1.10.0", Date: date},
		},
	}

	out := RenderByVersion(merged)

	assert.Less(t,
		strings.Index(out, "### v1.10.0"),
		strings.Index(out, "### v1.9.0"),
	)
}

func TestRenderByVersion_UncategorizedLast(t *testing.T) {
	date := mustDate(t, "2023-01-01")
	merged := map[string][]MergedVersionItem{
		UncategorizedSection: {{Content: "- loose", Version: "v1.0.0", Date: date}},
		"Zeta":               {{Content: "- z", Version: "v1.0.0", Date: date}},
		"Alpha":              {{Content: "- a", Version: "v1.0.0", Date: date}},
	}

	out := RenderByVersion(merged)

	alpha := strings.Index(out, "## Alpha")
	zeta := strings.Index(out, "## Zeta")
	uncat := strings.Index(out, "## "+UncategorizedSection)
	assert.Less(t, alpha, zeta)
	assert.Less(t, zeta, uncat)
}

func TestRenderByVersion_Empty(t *testing.T) {
	out := RenderByVersion(map[string][]MergedVersionItem{})

	assert.Equal(t, "# Aggregated Release Notes\n\n", out)
}

func TestRenderByHeading(t *testing.T) {
	merged := map[string][]MergedHeadingItem{
		"Features": {
			{Content: "- Shared", Sources: []string{"v2.0.0", "v1.0.0"}},
			{Content: "- Solo", Sources: []string{"v1.0.0"}},
		},
	}

	out := RenderByHeading(merged)

	expected := "# Aggregated Release Notes (Merged by Heading)\n\n" +
		"## Features\n\n" +
		"- Shared\n" +
		"*(Present in versions: v1.0.0, v2.0.0)*\n\n" +
		"- Solo\n" +
		"*(From version: v1.0.0)*\n\n" +
		"\n"
	assert.Equal(t, expected, out)
}

func TestRenderByHeading_SourcesSortedLexically(t *testing.T) {
	merged := map[string][]MergedHeadingItem{
		"Features": {
			{Content: "- x", Sources: []string{"v2.0.0", "v1.0.0", "v1.5.0"}},
		},
	}

	out := RenderByHeading(merged)

	assert.Contains(t, out, "*(Present in versions: v1.0.0, v1.5.0, v2.0.0)*")
}

func TestRenderByHeading_UncategorizedLast(t *testing.T) {
	merged := map[string][]MergedHeadingItem{
		UncategorizedSection: {{Content: "- loose", Sources: []string{"v1.0.0"}}},
		"Zeta":               {{Content: "- z", Sources: []string{"v1.0.0"}}},
	}

	out := RenderByHeading(merged)

	assert.Less(t,
		strings.Index(out, "## Zeta"),
		strings.Index(out, "## "+UncategorizedSection),
	)
}

func TestRenderByVersion_RoundTripsThroughParser(t *testing.T) {
	// Rendered output is itself heading-structured markdown, so feeding it
	// back through the parser recovers every content line.
	releases := []domain.Release{
		{TagName: "v2.0.0", PublishedAt: "2023-02-01T00:00:00Z", Body: "# Features\n- B"},
		{TagName: "v1.0.0", PublishedAt: "2023-01-01T00:00:00Z", Body: "# Features\n- A"},
	}

	merged, err := MergeByVersion(releases)
	require.NoError(t, err)

	reparsed := ParseSections(RenderByVersion(merged))

	assert.Equal(t, []string{"- B"}, reparsed["v2.0.0 (2023-02-01)"])
	assert.Equal(t, []string{"- A"}, reparsed["v1.0.0 (2023-01-01)"])
}
