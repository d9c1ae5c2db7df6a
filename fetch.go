package lexso

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the response body of a successful request.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// DomainLimiter rate limits requests per domain.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	Wait(ctx context.Context, domain string) error
}
