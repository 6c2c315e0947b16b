package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vidseo/publish-ms-go/internal/port"
	"github.com/vidseo/publish-ms-go/internal/usecase/upload"
)

// HTTPFetcher downloads remote videos over plain HTTP, reading the whole
// body into memory in one shot.
type HTTPFetcher struct {
	client *http.Client
}

// compile-time check: *HTTPFetcher must satisfy port.SourceFetcher
var _ port.SourceFetcher = (*HTTPFetcher)(nil)

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: 30 * time.Minute, // videos can be large
		},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (port.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return port.FetchResult{}, fmt.Errorf("%w: invalid link: %v", upload.ErrSourceFetchFailed, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return port.FetchResult{}, fmt.Errorf("%w: %v", upload.ErrSourceFetchFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return port.FetchResult{}, fmt.Errorf("%w: remote returned %s", upload.ErrSourceFetchFailed, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return port.FetchResult{}, fmt.Errorf("%w: reading body: %v", upload.ErrSourceFetchFailed, err)
	}

	return port.FetchResult{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
