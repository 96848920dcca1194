package ucare

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	ucerrors "github.com/newtype0092/uploadcare-go/errors"
)

// restEndpoint resolves a path against the configured REST base URL.
func (c *Client) restEndpoint(path string) string {
	return strings.TrimSuffix(c.cfg.RESTBaseURL, "/") + "/" + path
}

// restHeaders returns the headers every REST exchange carries: the versioned
// accept header and simple auth over the project key pair.
func (c *Client) restHeaders() http.Header {
	headers := make(http.Header)
	for key, values := range c.cfg.Headers {
		headers[key] = values
	}
	headers.Set("Accept", acceptHeader)
	headers.Set("Authorization", "Uploadcare.Simple "+c.cfg.PublicKey+":"+c.cfg.SecretKey)
	return headers
}

// rest issues one REST API exchange, sending form as an urlencoded body when
// present, and decodes the response into out when non-nil. These resources
// are plain request/response glue; all of them share the same error
// semantics as the upload core.
func (c *Client) rest(ctx context.Context, op, method, path string, form url.Values, out any) error {
	if c.cfg.SecretKey == "" {
		return ucerrors.NewError(op, ucerrors.ErrMissingSecretKey)
	}

	endpoint := c.restEndpoint(path)
	headers := c.restHeaders()
	var body io.Reader
	if form != nil {
		headers.Set("Content-Type", "application/x-www-form-urlencoded")
		body = strings.NewReader(form.Encode())
	}

	resp, err := c.transport.Send(ctx, method, endpoint, body, headers)
	if err != nil {
		return ucerrors.NewTransportError(op, endpoint, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return ucerrors.NewTransportError(op, endpoint, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ucerrors.NewTransportError(op, endpoint, fmt.Errorf("unexpected status %s", resp.Status))
	}

	if out == nil {
		return nil
	}
	if err := c.codec.Decode(payload, out); err != nil {
		return ucerrors.NewMalformedResponseError(op, err).WithURL(endpoint)
	}
	return nil
}
