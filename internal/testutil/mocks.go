// Package testutil provides test utilities and mocks for client operations.
// This package is internal and should only be used for testing within the module.
package testutil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MockTransport is a mock implementation of the transport.Transport interface.
// The behavior of each exchange is customized through the SendFunc field.
type MockTransport struct {
	SendFunc func(ctx context.Context, method, url string, body io.Reader, headers http.Header) (*http.Response, error)
}

// Send mocks one HTTP exchange.
func (m *MockTransport) Send(
	ctx context.Context,
	method, url string,
	body io.Reader,
	headers http.Header,
) (*http.Response, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, method, url, body, headers)
	}
	return JSONResponse(http.StatusOK, `{}`), nil
}

// Exchange records one request observed by a RecordingTransport.
type Exchange struct {
	Method  string
	URL     string
	Body    []byte
	Headers http.Header
}

// RecordingTransport captures every request in order and replays canned
// responses one per request. Requests beyond the supplied responses get an
// empty 200 JSON body.
type RecordingTransport struct {
	Exchanges []Exchange
	Responses []*http.Response
	Errs      map[int]error // request index -> error returned instead of a response
}

// Send implements transport.Transport, recording the request before
// answering it.
func (r *RecordingTransport) Send(
	_ context.Context,
	method, url string,
	body io.Reader,
	headers http.Header,
) (*http.Response, error) {
	var payload []byte
	if body != nil {
		payload, _ = io.ReadAll(body)
	}
	index := len(r.Exchanges)
	r.Exchanges = append(r.Exchanges, Exchange{
		Method:  method,
		URL:     url,
		Body:    payload,
		Headers: headers,
	})

	if err, ok := r.Errs[index]; ok {
		return nil, err
	}
	if index >= len(r.Responses) {
		return JSONResponse(http.StatusOK, `{}`), nil
	}
	return r.Responses[index], nil
}

// JSONResponse builds an *http.Response carrying the given JSON body.
func JSONResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
