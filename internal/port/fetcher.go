package port

import "context"

// FetchResult holds a fully read remote body and what the remote declared
// about it.
type FetchResult struct {
	Body        []byte
	ContentType string
}

// SourceFetcher downloads a remote video in one shot. A non-success remote
// status must be reported as an error carrying the remote status text.
type SourceFetcher interface {
	Fetch(ctx context.Context, url string) (FetchResult, error)
}
