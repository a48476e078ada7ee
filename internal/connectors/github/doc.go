// Package github implements the release source for GitHub repositories.
//
// The package wraps the go-github client and exposes the repository release
// history as [domain.Release] values through the [driven.ReleaseSource] port.
//
// # Authentication
//
// A personal access token (classic or fine-grained) raises the API quota
// from 60 to 5,000 requests per hour and grants access to private
// repositories. Unauthenticated access works for public repositories.
//
// # Rate Limiting
//
// A dual-strategy rate limiter protects the API quota:
//
//  1. Proactive throttling: a token bucket limits requests to roughly
//     1.2 per second, staying well under the authenticated hourly limit.
//
//  2. Reactive handling: X-RateLimit-Remaining and X-RateLimit-Reset
//     response headers are tracked, and requests wait for the reset time
//     once the remaining quota falls below a safety buffer.
//
// # Release Mapping
//
// Releases are fetched with the paginated List Releases API, mapped to
// domain records and sorted newest first by publish timestamp with a stable
// sort. Draft releases carry no publish timestamp and are skipped, since
// date ordering is load-bearing for the aggregation pipeline.
package github
