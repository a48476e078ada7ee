package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent aggregation failures.
// These are distinct from infrastructure errors.
var (
	// ErrTagNotFound indicates a referenced tag is absent from the release list.
	ErrTagNotFound = errors.New("tag not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// TagNotFoundError reports a single tag that could not be resolved.
// Raised by range selection, which fails on the first missing endpoint.
type TagNotFoundError struct {
	Tag string
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("tag %q not found", e.Tag)
}

// Unwrap allows errors.Is(err, ErrTagNotFound) to match.
func (e *TagNotFoundError) Unwrap() error {
	return ErrTagNotFound
}

// TagsNotFoundError aggregates every missing tag from an explicit tag list.
// Explicit-list selection resolves all tags before failing so the caller
// sees the complete set, not just the first miss.
type TagsNotFoundError struct {
	Tags []string
}

func (e *TagsNotFoundError) Error() string {
	return fmt.Sprintf("could not find the following tags: %s", strings.Join(e.Tags, ", "))
}

// Unwrap allows errors.Is(err, ErrTagNotFound) to match.
func (e *TagsNotFoundError) Unwrap() error {
	return ErrTagNotFound
}

// DateParseError reports a release whose publish timestamp does not parse.
// Date ordering is load-bearing, so this aborts the run.
type DateParseError struct {
	Tag   string
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("release %q: cannot parse publish date %q: %v", e.Tag, e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
