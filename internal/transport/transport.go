// Package transport defines the HTTP transport collaborator used by all
// API operations. The interface is intentionally narrow so tests can swap
// in mock implementations.
package transport

import (
	"context"
	"io"
	"net/http"
)

// Transport issues a single HTTP exchange. Implementations must not retry;
// every failure surfaces to the caller.
type Transport interface {
	Send(ctx context.Context, method, url string, body io.Reader, headers http.Header) (*http.Response, error)
}

// HTTPTransport is the default Transport over a net/http client.
type HTTPTransport struct {
	client *http.Client
}

// New creates an HTTPTransport. A nil client falls back to http.DefaultClient;
// per-request timeouts are the supplied client's concern.
func New(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client}
}

// Send implements Transport.
func (t *HTTPTransport) Send(
	ctx context.Context,
	method, url string,
	body io.Reader,
	headers http.Header,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	return t.client.Do(req)
}
