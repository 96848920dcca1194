package ucare

import (
	"net/http"

	"github.com/newtype0092/uploadcare-go/uctypes"
)

// WithSecretKey sets the project secret key, enabling REST API operations
// (file resources, groups, webhooks, project info).
func WithSecretKey(secretKey string) uctypes.Option {
	return func(c *uctypes.ClientConfig) {
		c.SecretKey = secretKey
	}
}

// WithUploadBaseURL overrides the upload API host.
// Useful for proxies or local testing.
func WithUploadBaseURL(baseURL string) uctypes.Option {
	return func(c *uctypes.ClientConfig) {
		if baseURL != "" {
			c.UploadBaseURL = baseURL
		}
	}
}

// WithRESTBaseURL overrides the REST API host.
func WithRESTBaseURL(baseURL string) uctypes.Option {
	return func(c *uctypes.ClientConfig) {
		if baseURL != "" {
			c.RESTBaseURL = baseURL
		}
	}
}

// WithDefaultStore sets the store directive applied to uploads that don't
// specify one. Default is StoreAuto (the server decides).
func WithDefaultStore(store uctypes.StoreDirective) uctypes.Option {
	return func(c *uctypes.ClientConfig) {
		c.DefaultStore = store
	}
}

// WithSecureSignature enables signed uploads. Both the signature and its
// expiration timestamp are sent alongside the public key on every upload.
func WithSecureSignature(signature, expire string) uctypes.Option {
	return func(c *uctypes.ClientConfig) {
		c.SecureSignature = signature
		c.SecureExpire = expire
	}
}

// WithHTTPClient allows providing a custom HTTP client.
// This gives full control over HTTP behavior including timeouts and proxies.
func WithHTTPClient(client *http.Client) uctypes.Option {
	return func(c *uctypes.ClientConfig) {
		c.HTTPClient = client
	}
}

// WithHeader attaches an extra header to every request issued by the client.
func WithHeader(key, value string) uctypes.Option {
	return func(c *uctypes.ClientConfig) {
		if c.Headers == nil {
			c.Headers = make(http.Header)
		}
		c.Headers.Set(key, value)
	}
}

// WithFilename sets the filename reported to the server for an upload.
// A generated unique token is used when not specified.
func WithFilename(filename string) uctypes.UploadOption {
	return func(c *uctypes.UploadConfig) {
		c.Filename = filename
	}
}

// WithContentType sets the MIME type for an upload, skipping detection.
func WithContentType(contentType string) uctypes.UploadOption {
	return func(c *uctypes.UploadConfig) {
		c.ContentType = contentType
	}
}

// WithStore sets the store directive for a single upload, overriding the
// client default.
func WithStore(store uctypes.StoreDirective) uctypes.UploadOption {
	return func(c *uctypes.UploadConfig) {
		c.Store = store
	}
}

// WithLimit caps the number of files per listing page.
func WithLimit(limit int) uctypes.ListFilesOption {
	return func(c *uctypes.ListFilesConfig) {
		if limit > 0 {
			c.Limit = limit
		}
	}
}

// WithOrdering selects the listing sort order, e.g. "datetime_uploaded",
// "-datetime_uploaded" or "size".
func WithOrdering(ordering string) uctypes.ListFilesOption {
	return func(c *uctypes.ListFilesConfig) {
		c.Ordering = ordering
	}
}

// WithFrom sets the starting point of the listing, interpreted according
// to the selected ordering.
func WithFrom(from string) uctypes.ListFilesOption {
	return func(c *uctypes.ListFilesConfig) {
		c.From = from
	}
}

// WithStored restricts the listing to stored files.
func WithStored() uctypes.ListFilesOption {
	return func(c *uctypes.ListFilesConfig) {
		c.Stored = true
	}
}

// WithRemoved restricts the listing to removed files.
func WithRemoved() uctypes.ListFilesOption {
	return func(c *uctypes.ListFilesConfig) {
		c.Removed = true
	}
}
