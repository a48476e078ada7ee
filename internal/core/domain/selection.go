package domain

// SelectionMode identifies how releases are chosen for aggregation.
type SelectionMode string

const (
	// SelectAll aggregates every release in retrieval order.
	SelectAll SelectionMode = "all"

	// SelectTags aggregates an explicit list of tags.
	SelectTags SelectionMode = "tags"

	// SelectRange aggregates the inclusive slice between two tags.
	SelectRange SelectionMode = "range"
)

// Selection describes which releases take part in a run.
type Selection struct {
	// Mode picks the selection strategy. An empty mode means SelectAll.
	Mode SelectionMode

	// Tags lists explicit tag names for SelectTags. Input order is
	// discarded: the result is re-sorted newest first by publish date.
	// Duplicate tags resolve independently and are not collapsed.
	Tags []string

	// StartTag and EndTag bound the positional slice for SelectRange.
	// Either may be empty, in which case the slice extends to the
	// corresponding end of the date-sorted release list.
	StartTag string
	EndTag   string

	// IncludePrereleases keeps releases flagged as pre-release.
	// When false they are dropped before any mode-specific logic runs.
	IncludePrereleases bool
}

// AllReleases returns a selection covering every release.
func AllReleases(includePrereleases bool) Selection {
	return Selection{Mode: SelectAll, IncludePrereleases: includePrereleases}
}

// TagList returns a selection for an explicit list of tags.
func TagList(tags []string, includePrereleases bool) Selection {
	return Selection{Mode: SelectTags, Tags: tags, IncludePrereleases: includePrereleases}
}

// TagRange returns a selection for the inclusive range between two tags.
func TagRange(startTag, endTag string, includePrereleases bool) Selection {
	return Selection{
		Mode:               SelectRange,
		StartTag:           startTag,
		EndTag:             endTag,
		IncludePrereleases: includePrereleases,
	}
}
