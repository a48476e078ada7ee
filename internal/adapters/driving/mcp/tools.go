package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/relnote-labs/relnotes-cli/internal/core/domain"
	"github.com/relnote-labs/relnotes-cli/internal/core/ports/driving"
)

// AggregateInput is the input schema for the aggregate tool.
type AggregateInput struct {
	Owner              string   `json:"owner" jsonschema:"repository owner (user or organisation)"`
	Repo               string   `json:"repo" jsonschema:"repository name"`
	StartTag           string   `json:"start_tag,omitempty" jsonschema:"start tag of the range (older version)"`
	EndTag             string   `json:"end_tag,omitempty" jsonschema:"end tag of the range (newer version)"`
	Versions           []string `json:"versions,omitempty" jsonschema:"explicit tags to merge (overrides the range)"`
	IncludePrereleases bool     `json:"include_prereleases,omitempty" jsonschema:"include pre-release versions"`
	MergeHeadings      bool     `json:"merge_headings,omitempty" jsonschema:"collapse identical lines under common headings"`
}

// AggregateOutput is the output schema for the aggregate tool.
type AggregateOutput struct {
	Markdown     string `json:"markdown"`
	ReleaseCount int    `json:"release_count"`
}

// SectionsInput is the input schema for the preview tool.
type SectionsInput struct {
	Owner string `json:"owner" jsonschema:"repository owner (user or organisation)"`
	Repo  string `json:"repo" jsonschema:"repository name"`
	Tag   string `json:"tag" jsonschema:"release tag to preview"`
}

// SectionsOutput is the output schema for the preview tool.
type SectionsOutput struct {
	Sections map[string][]string `json:"sections"`
	Count    int                 `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "aggregate_release_notes",
		Description: "Merge the release notes of a GitHub repository into one markdown document",
	}, s.handleAggregate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "preview_sections",
		Description: "Show the top-level sections of a single release body",
	}, s.handleSections)
}

// handleAggregate handles the aggregate tool invocation.
func (s *Server) handleAggregate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AggregateInput,
) (*mcp.CallToolResult, AggregateOutput, error) {
	var selection domain.Selection
	switch {
	case len(input.Versions) > 0:
		selection = domain.TagList(input.Versions, input.IncludePrereleases)
	case input.StartTag != "" || input.EndTag != "":
		selection = domain.TagRange(input.StartTag, input.EndTag, input.IncludePrereleases)
	default:
		selection = domain.AllReleases(input.IncludePrereleases)
	}

	result, err := s.ports.Aggregator.Aggregate(ctx, driving.AggregateRequest{
		Owner:         input.Owner,
		Repo:          input.Repo,
		Selection:     selection,
		MergeHeadings: input.MergeHeadings,
	})
	if err != nil {
		return nil, AggregateOutput{}, err
	}

	return nil, AggregateOutput{
		Markdown:     result.Markdown,
		ReleaseCount: result.ReleaseCount,
	}, nil
}

// handleSections handles the preview tool invocation.
func (s *Server) handleSections(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SectionsInput,
) (*mcp.CallToolResult, SectionsOutput, error) {
	sections, err := s.ports.Aggregator.Sections(ctx, input.Owner, input.Repo, input.Tag)
	if err != nil {
		return nil, SectionsOutput{}, err
	}

	return nil, SectionsOutput{
		Sections: sections,
		Count:    len(sections),
	}, nil
}
