package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/relnote-labs/relnotes-cli/internal/core/domain"
	"github.com/relnote-labs/relnotes-cli/internal/logger"
)

// SelectReleases returns the subset of releases covered by a selection.
//
// The input list is expected in retrieval order (newest published first).
// Unless the selection includes prereleases, releases flagged as pre-release
// are dropped before any mode-specific logic runs.
func SelectReleases(all []domain.Release, sel domain.Selection) ([]domain.Release, error) {
	candidates := all
	if !sel.IncludePrereleases {
		candidates = make([]domain.Release, 0, len(all))
		for _, r := range all {
			if !r.Prerelease {
				candidates = append(candidates, r)
			}
		}
		logger.Debug("Prerelease filter: %d of %d releases remain", len(candidates), len(all))
	}

	switch sel.Mode {
	case domain.SelectAll, "":
		return candidates, nil
	case domain.SelectTags:
		return selectByTags(candidates, sel.Tags)
	case domain.SelectRange:
		return selectByRange(candidates, sel.StartTag, sel.EndTag)
	default:
		return nil, fmt.Errorf("%w: unknown selection mode %q", domain.ErrInvalidInput, sel.Mode)
	}
}

// selectByTags resolves each tag to its release. All missing tags are
// collected into one failure rather than failing on the first. Duplicate
// tags resolve independently. On success the result is re-sorted newest
// first by publish date, discarding the input order.
func selectByTags(releases []domain.Release, tags []string) ([]domain.Release, error) {
	selected := make([]domain.Release, 0, len(tags))
	var missing []string

	for _, tag := range tags {
		idx := indexOfTag(releases, tag)
		if idx < 0 {
			missing = append(missing, tag)
			continue
		}
		selected = append(selected, releases[idx])
	}

	if len(missing) > 0 {
		return nil, &domain.TagsNotFoundError{Tags: missing}
	}

	if err := sortByDateDesc(selected); err != nil {
		return nil, err
	}
	return selected, nil
}

// selectByRange returns the inclusive positional slice between two tags in
// the date-sorted input. With only a start tag the slice runs from that
// position to the end of the list (toward older releases); with only an end
// tag it runs from the newest release down to that position.
func selectByRange(releases []domain.Release, startTag, endTag string) ([]domain.Release, error) {
	if len(releases) == 0 {
		if startTag != "" {
			return nil, &domain.TagNotFoundError{Tag: startTag}
		}
		if endTag != "" {
			return nil, &domain.TagNotFoundError{Tag: endTag}
		}
		return nil, nil
	}

	lo, hi := 0, len(releases)-1

	if startTag != "" {
		idx := indexOfTag(releases, startTag)
		if idx < 0 {
			return nil, &domain.TagNotFoundError{Tag: startTag}
		}
		lo = idx
	}
	if endTag != "" {
		idx := indexOfTag(releases, endTag)
		if idx < 0 {
			return nil, &domain.TagNotFoundError{Tag: endTag}
		}
		if startTag == "" {
			// End-only: keep everything from the newest release down.
			lo, hi = 0, idx
		} else {
			hi = idx
		}
	} else if startTag != "" {
		hi = len(releases) - 1
	}

	if lo > hi {
		lo, hi = hi, lo
	}

	out := make([]domain.Release, hi-lo+1)
	copy(out, releases[lo:hi+1])
	return out, nil
}

// indexOfTag returns the position of a tag in the release list, or -1.
func indexOfTag(releases []domain.Release, tag string) int {
	for i := range releases {
		if releases[i].TagName == tag {
			return i
		}
	}
	return -1
}

// sortByDateDesc stably sorts releases newest first by publish date.
// Every date is parsed up front so a bad timestamp fails the run instead
// of silently mis-ordering the output.
func sortByDateDesc(releases []domain.Release) error {
	type dated struct {
		release domain.Release
		date    time.Time
	}

	entries := make([]dated, len(releases))
	for i := range releases {
		date, err := releases[i].PublishedDate()
		if err != nil {
			return err
		}
		entries[i] = dated{release: releases[i], date: date}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].date.After(entries[j].date)
	})

	for i := range entries {
		releases[i] = entries[i].release
	}
	return nil
}
