package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relnote-labs/relnotes-cli/internal/core/domain"
	"github.com/relnote-labs/relnotes-cli/internal/core/ports/driving"
)

func newTestServer(t *testing.T, mock *mockAggregator) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Aggregator: mock})
	require.NoError(t, err)
	return server
}

func TestHandleAggregate(t *testing.T) {
	mock := &mockAggregator{result: &driving.AggregateResult{
		Markdown:     "# Aggregated Release Notes\n",
		ReleaseCount: 3,
	}}
	server := newTestServer(t, mock)

	_, out, err := server.handleAggregate(context.Background(), nil, AggregateInput{
		Owner: "octocat",
		Repo:  "hello-world",
	})

	require.NoError(t, err)
	assert.Equal(t, "# Aggregated Release Notes\n", out.Markdown)
	assert.Equal(t, 3, out.ReleaseCount)
	assert.Equal(t, domain.SelectAll, mock.lastRequest.Selection.Mode)
}

func TestHandleAggregate_VersionsSelection(t *testing.T) {
	mock := &mockAggregator{result: &driving.AggregateResult{ReleaseCount: 2}}
	server := newTestServer(t, mock)

	_, _, err := server.handleAggregate(context.Background(), nil, AggregateInput{
		Owner:    "octocat",
		Repo:     "hello-world",
		Versions: []string{"v2.0.0", "v1.0.0"},
		StartTag: "v0.1.0",
	})

	require.NoError(t, err)
	// An explicit version list overrides the range.
	assert.Equal(t, domain.SelectTags, mock.lastRequest.Selection.Mode)
	assert.Equal(t, []string{"v2.0.0", "v1.0.0"}, mock.lastRequest.Selection.Tags)
}

func TestHandleAggregate_RangeSelection(t *testing.T) {
	mock := &mockAggregator{result: &driving.AggregateResult{ReleaseCount: 1}}
	server := newTestServer(t, mock)

	_, _, err := server.handleAggregate(context.Background(), nil, AggregateInput{
		Owner:         "octocat",
		Repo:          "hello-world",
		StartTag:      "v1.0.0",
		EndTag:        "v2.0.0",
		MergeHeadings: true,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SelectRange, mock.lastRequest.Selection.Mode)
	assert.Equal(t, "v1.0.0", mock.lastRequest.Selection.StartTag)
	assert.Equal(t, "v2.0.0", mock.lastRequest.Selection.EndTag)
	assert.True(t, mock.lastRequest.MergeHeadings)
}

func TestHandleAggregate_Error(t *testing.T) {
	mock := &mockAggregator{err: errors.New("boom")}
	server := newTestServer(t, mock)

	_, _, err := server.handleAggregate(context.Background(), nil, AggregateInput{
		Owner: "octocat",
		Repo:  "hello-world",
	})

	assert.Error(t, err)
}

func TestHandleSections(t *testing.T) {
	mock := &mockAggregator{sections: map[string][]string{
		"Features":  {"- A"},
		"Bug Fixes": {"- B"},
	}}
	server := newTestServer(t, mock)

	_, out, err := server.handleSections(context.Background(), nil, SectionsInput{
		Owner: "octocat",
		Repo:  "hello-world",
		Tag:   "v1.0.0",
	})

	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", mock.lastTag)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, []string{"- A"}, out.Sections["Features"])
}

func TestHandleSections_Error(t *testing.T) {
	mock := &mockAggregator{err: &domain.TagNotFoundError{Tag: "v9.9.9"}}
	server := newTestServer(t, mock)

	_, _, err := server.handleSections(context.Background(), nil, SectionsInput{
		Owner: "octocat",
		Repo:  "hello-world",
		Tag:   "v9.9.9",
	})

	assert.ErrorIs(t, err, domain.ErrTagNotFound)
}
