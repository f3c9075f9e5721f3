package htclient

import (
	"io"
	"net/http"
)

// maxBodySize limits how much of the response body is read into memory.
const maxBodySize = 1 << 20

// HTTPClient is a standard HTTP client wrapper to simplify response reading.
type HTTPClient struct {
	http.Client
}

// NewDefaultClient returns a general purpose HTTP client.
func NewDefaultClient() *HTTPClient {
	return &HTTPClient{}
}

// Do sends a request, receives a response, and fully reads the response body.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	var body []byte
	switch resp.ContentLength {
	case 0:
		body, err = []byte{}, nil
	default:
		body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	}
	if err != nil {
		return nil, nil, err
	}

	return resp, body, nil
}
