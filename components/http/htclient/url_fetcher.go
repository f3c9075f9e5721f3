package htclient

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// URLFetcher sends GET requests to the configured HTTP endpoint.
type URLFetcher struct {
	url     string
	timeout time.Duration
	client  *HTTPClient
}

// NewURLFetcher initializes URL fetcher.
//
// Parameters:
//   - client to perform an actual HTTP request.
//   - url - HTTP URL, may already contain query parameters.
//   - timeout - HTTP request timeout, zero means no timeout.
func NewURLFetcher(client *HTTPClient, url string, timeout time.Duration) *URLFetcher {
	return &URLFetcher{
		url:     url,
		timeout: timeout,
		client:  client,
	}
}

// Fetch issues a GET request with query merged into the configured URL.
//
// Remarks:
//   - Non-2xx status codes aren't treated as errors, the caller decides.
func (f *URLFetcher) Fetch(ctx context.Context, query url.Values) (int, []byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	u, err := url.Parse(f.url)
	if err != nil {
		return 0, nil, err
	}

	if len(query) > 0 {
		values := u.Query()
		for key, vals := range query {
			values[key] = vals
		}
		u.RawQuery = values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, body, err := f.client.Do(req)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, body, nil
}
