package driven

import "context"

// TokenProvider provides access tokens for authenticated API calls.
type TokenProvider interface {
	// GetToken returns a valid access token.
	// Returns empty string for unauthenticated access.
	GetToken(ctx context.Context) (string, error)
}
