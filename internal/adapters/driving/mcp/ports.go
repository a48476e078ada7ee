// Package mcp exposes the aggregation pipeline as a Model Context Protocol
// server, so AI assistants can request consolidated release notes directly.
package mcp

import (
	"github.com/relnote-labs/relnotes-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Aggregator runs the release-note aggregation pipeline.
	Aggregator driving.Aggregator
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Aggregator == nil {
		return ErrMissingAggregator
	}
	return nil
}
