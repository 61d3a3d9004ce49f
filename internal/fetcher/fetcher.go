package fetcher

import (
	"context"
	"fmt"
	"io"
)

// Fetcher defines the interface for downloading remote data.
type Fetcher interface {
	// Download fetches the URL and returns the response body.
	// A non-success status is returned as *FetchError.
	Download(ctx context.Context, url string) (io.ReadCloser, error)

	// DownloadBytes fetches the URL and returns the full response body.
	DownloadBytes(ctx context.Context, url string) ([]byte, error)
}

// FetchError reports a non-success HTTP response.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}
