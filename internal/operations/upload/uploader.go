package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	ucerrors "github.com/newtype0092/uploadcare-go/errors"
	"github.com/newtype0092/uploadcare-go/internal/codec"
	"github.com/newtype0092/uploadcare-go/internal/transport"
)

// Form field and response key names of the upload API wire contract.
const (
	fieldPublicKey   = "UPLOADCARE_PUB_KEY"
	fieldStore       = "UPLOADCARE_STORE"
	fieldSignature   = "signature"
	fieldExpire      = "expire"
	fieldFile        = "file"
	fieldFilename    = "filename"
	fieldSize        = "size"
	fieldContentType = "content_type"
	fieldUUID        = "uuid"

	keyFile = "file"
	keyUUID = "uuid"
)

// Config holds the already-resolved upload settings supplied by the client.
type Config struct {
	// PublicKey is the project public key sent with every upload request
	PublicKey string

	// BaseURL is the upload API host; signed part PUTs bypass it
	BaseURL string

	// SecureSignature and SecureExpire are attached to form POSTs when
	// both are set
	SecureSignature string
	SecureExpire    string

	// Headers are extra headers attached to form POSTs
	Headers http.Header
}

// Uploader executes the direct and multipart upload paths against the
// upload API. It is stateless between calls; a fresh session and part
// buffer are created per multipart upload.
type Uploader struct {
	transport transport.Transport
	codec     codec.Codec
	cfg       *Config
}

// New creates a new Uploader instance.
func New(t transport.Transport, c codec.Codec, cfg *Config) *Uploader {
	return &Uploader{
		transport: t,
		codec:     c,
		cfg:       cfg,
	}
}

// endpoint resolves a path against the configured upload base URL.
func (u *Uploader) endpoint(path string) string {
	return strings.TrimSuffix(u.cfg.BaseURL, "/") + "/" + path
}

// authFields returns the metadata fields every upload form POST carries.
func (u *Uploader) authFields() map[string]string {
	fields := map[string]string{
		fieldPublicKey: u.cfg.PublicKey,
	}
	if u.cfg.SecureSignature != "" && u.cfg.SecureExpire != "" {
		fields[fieldSignature] = u.cfg.SecureSignature
		fields[fieldExpire] = u.cfg.SecureExpire
	}
	return fields
}

// filePart describes the file entry of a multipart form body.
type filePart struct {
	filename    string
	contentType string
	data        io.Reader
}

// postForm sends a multipart form POST to the given upload API path and
// returns the raw response body. Transport-level failures, including
// protocol-level HTTP error statuses, are reported as transport errors.
func (u *Uploader) postForm(
	ctx context.Context,
	op, path string,
	fields map[string]string,
	file *filePart,
) ([]byte, error) {
	url := u.endpoint(path)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, ucerrors.NewError(op, err).WithURL(url)
		}
	}
	if file != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldFile, file.filename))
		header.Set("Content-Type", file.contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, ucerrors.NewError(op, err).WithURL(url)
		}
		if _, err := io.Copy(part, file.data); err != nil {
			return nil, ucerrors.NewError(op, err).WithURL(url)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, ucerrors.NewError(op, err).WithURL(url)
	}

	headers := make(http.Header)
	for key, values := range u.cfg.Headers {
		headers[key] = values
	}
	headers.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.transport.Send(ctx, http.MethodPost, url, &body, headers)
	if err != nil {
		return nil, ucerrors.NewTransportError(op, url, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ucerrors.NewTransportError(op, url, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, ucerrors.NewTransportError(op, url, fmt.Errorf("unexpected status %s", resp.Status))
	}
	return payload, nil
}
