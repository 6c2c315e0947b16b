package mock

import (
	"context"

	"github.com/vidseo/publish-ms-go/internal/port"
)

// Fetcher implements port.SourceFetcher for tests.
type Fetcher struct {
	Out port.FetchResult
	Err error

	// captured inputs
	URL string

	Called bool
}

func (m *Fetcher) Fetch(ctx context.Context, url string) (port.FetchResult, error) {
	m.Called = true
	m.URL = url
	if m.Err != nil {
		return port.FetchResult{}, m.Err
	}
	return m.Out, nil
}
