package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	server, err := NewServer(&Ports{Aggregator: &mockAggregator{}})

	require.NoError(t, err)
	assert.NotNil(t, server)
}

func TestNewServer_MissingAggregator(t *testing.T) {
	_, err := NewServer(&Ports{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAggregator)
}

func TestPorts_Validate(t *testing.T) {
	assert.NoError(t, (&Ports{Aggregator: &mockAggregator{}}).Validate())
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingAggregator)
}
