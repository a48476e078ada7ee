package mcp

import "errors"

// ErrMissingAggregator indicates the server was constructed without an
// aggregator port.
var ErrMissingAggregator = errors.New("mcp: aggregator service is required")
