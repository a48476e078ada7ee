package domain

import "time"

// Release represents one published version fetched from a release source.
// It is immutable once fetched: the aggregation pipeline reads it and
// discards it at the end of the run.
type Release struct {
	// TagName is the version identifier (e.g. "v1.2.3").
	TagName string

	// Name is the optional human-readable release title.
	Name string

	// Body is the free-text release notes, markdown-like.
	// A release without a body contributes no sections.
	Body string

	// PublishedAt is the publish timestamp in RFC 3339 form.
	PublishedAt string

	// Prerelease marks pre-release versions, which are filtered out
	// unless the caller asks for them.
	Prerelease bool
}

// PublishedDate parses the publish timestamp down to a UTC calendar date.
// Date ordering is load-bearing throughout the pipeline, so a timestamp
// that does not parse is fatal for the whole run rather than skipped.
func (r Release) PublishedDate() (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, r.PublishedAt)
	if err != nil {
		return time.Time{}, &DateParseError{Tag: r.TagName, Value: r.PublishedAt, Err: err}
	}
	ts = ts.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}
