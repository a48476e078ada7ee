package mcp

import (
	"context"

	"github.com/relnote-labs/relnotes-cli/internal/core/ports/driving"
)

// mockAggregator is a scripted Aggregator for handler tests.
type mockAggregator struct {
	result   *driving.AggregateResult
	sections map[string][]string
	err      error

	lastRequest driving.AggregateRequest
	lastTag     string
}

var _ driving.Aggregator = (*mockAggregator)(nil)

func (m *mockAggregator) Aggregate(_ context.Context, req driving.AggregateRequest) (*driving.AggregateResult, error) {
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockAggregator) Sections(_ context.Context, _, _, tag string) (map[string][]string, error) {
	m.lastTag = tag
	if m.err != nil {
		return nil, m.err
	}
	return m.sections, nil
}
