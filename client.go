package ucare

import (
	ucerrors "github.com/newtype0092/uploadcare-go/errors"
	"github.com/newtype0092/uploadcare-go/internal/codec"
	"github.com/newtype0092/uploadcare-go/internal/operations/upload"
	"github.com/newtype0092/uploadcare-go/internal/transport"
	"github.com/newtype0092/uploadcare-go/uctypes"
)

const (
	// DefaultUploadBaseURL is the upload API host
	DefaultUploadBaseURL = "https://upload.uploadcare.com/"

	// DefaultRESTBaseURL is the REST API host
	DefaultRESTBaseURL = "https://api.uploadcare.com/"

	// DefaultContentType is the content type used when detection fails
	DefaultContentType = "application/octet-stream"

	// acceptHeader pins the REST API version
	acceptHeader = "application/vnd.uploadcare-v0.5+json"
)

// Client is an Uploadcare API client. Configuration is fixed at construction;
// the client itself is stateless and safe to use concurrently for independent
// uploads, as long as each byte source is owned by a single call.
type Client struct {
	cfg       uctypes.ClientConfig
	transport transport.Transport
	codec     codec.Codec
}

// New creates a new client for the given project public key.
// REST operations additionally need a secret key (see WithSecretKey).
//
// Example:
//
//	client, err := ucare.New("demopublickey",
//	    ucare.WithSecretKey("demosecretkey"),
//	    ucare.WithDefaultStore(uctypes.StoreYes),
//	)
func New(publicKey string, opts ...uctypes.Option) (*Client, error) {
	if publicKey == "" {
		return nil, ucerrors.NewError("client initialization", ucerrors.ErrInvalidInput).
			WithMessage("public key cannot be empty")
	}

	cfg := &uctypes.ClientConfig{
		PublicKey:     publicKey,
		UploadBaseURL: DefaultUploadBaseURL,
		RESTBaseURL:   DefaultRESTBaseURL,
		DefaultStore:  uctypes.StoreAuto,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		cfg:       *cfg,
		transport: transport.New(cfg.HTTPClient),
		codec:     codec.JSON{},
	}, nil
}

// NewWithTransport creates a client with custom transport and codec
// collaborators. This is primarily used for testing with mocks.
func NewWithTransport(t transport.Transport, c codec.Codec, publicKey string, opts ...uctypes.Option) *Client {
	cfg := &uctypes.ClientConfig{
		PublicKey:     publicKey,
		UploadBaseURL: DefaultUploadBaseURL,
		RESTBaseURL:   DefaultRESTBaseURL,
		DefaultStore:  uctypes.StoreAuto,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Client{cfg: *cfg, transport: t, codec: c}
}

// uploaderConfig projects the client configuration onto the upload
// operations package.
func (c *Client) uploaderConfig() *upload.Config {
	return &upload.Config{
		PublicKey:       c.cfg.PublicKey,
		BaseURL:         c.cfg.UploadBaseURL,
		SecureSignature: c.cfg.SecureSignature,
		SecureExpire:    c.cfg.SecureExpire,
		Headers:         c.cfg.Headers,
	}
}
