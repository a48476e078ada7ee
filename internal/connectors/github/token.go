package github

import (
	"context"

	"github.com/relnote-labs/relnotes-cli/internal/core/ports/driven"
)

// Ensure StaticTokenProvider implements the interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// StaticTokenProvider serves a fixed personal access token. An empty token
// means unauthenticated access.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a token provider around a fixed token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken implements driven.TokenProvider.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	return p.token, nil
}
