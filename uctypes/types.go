// Package uctypes provides shared type definitions for the Uploadcare client module.
package uctypes

import (
	"net/http"
)

// StoreDirective controls server-side storing of an uploaded file.
type StoreDirective string

// Predefined store directives
const (
	// StoreAuto lets the project settings on the server decide
	StoreAuto StoreDirective = "auto"

	// StoreYes stores the file permanently right after upload
	StoreYes StoreDirective = "1"

	// StoreNo keeps the file temporary; it is removed after the retention window
	StoreNo StoreDirective = "0"
)

// SignedPartTarget is a pre-authorized, time-limited URL accepting a single PUT
// of up to one part size worth of bytes. Read-only, single-use.
type SignedPartTarget string

// MultipartSession is the server-issued descriptor returned by the multipart
// start phase. The order of Parts defines which byte range each target accepts;
// the client iterates whatever sequence the server returns.
type MultipartSession struct {
	// ID is the server-assigned session/file identifier
	ID string `json:"uuid"`

	// Parts is the ordered sequence of signed part-upload targets
	Parts []SignedPartTarget `json:"parts"`
}

// UploadResult is the final output of an upload: the stable file identifier
// assigned by the server. No other upload state is retained.
type UploadResult struct {
	// FileID is the identifier extracted from the direct-upload or
	// multipart-completion response
	FileID string
}

// UploadConfig holds the configuration for upload operations.
type UploadConfig struct {
	// Filename is the name reported to the server; a generated unique token
	// is used when empty
	Filename string

	// ContentType is the MIME type of the data; detected from the content
	// when empty, falling back to application/octet-stream
	ContentType string

	// Store controls server-side storing of the uploaded file
	Store StoreDirective
}

// UploadOption is a functional option for upload operations.
type UploadOption func(*UploadConfig)

// ClientConfig holds the configuration for the client.
type ClientConfig struct {
	// PublicKey is the Uploadcare project public key
	PublicKey string

	// SecretKey is the Uploadcare project secret key, required only for
	// REST API operations
	SecretKey string

	// UploadBaseURL is the base URL of the upload API
	UploadBaseURL string

	// RESTBaseURL is the base URL of the REST API
	RESTBaseURL string

	// DefaultStore is applied to uploads that do not set a directive
	DefaultStore StoreDirective

	// SecureSignature and SecureExpire enable signed uploads when both
	// are set; they are sent alongside the public key
	SecureSignature string
	SecureExpire    string

	// Headers are extra headers attached to every request
	Headers http.Header

	// HTTPClient overrides the HTTP client used for all requests
	HTTPClient *http.Client
}

// Option is a functional option for configuring the client.
type Option func(*ClientConfig)

// FileInfo describes a single file resource of the REST API.
type FileInfo struct {
	UUID             string `json:"uuid"`
	OriginalFilename string `json:"original_filename"`
	MimeType         string `json:"mime_type"`
	Size             int64  `json:"size"`
	IsImage          bool   `json:"is_image"`
	IsReady          bool   `json:"is_ready"`
	DatetimeUploaded string `json:"datetime_uploaded"`
	DatetimeStored   string `json:"datetime_stored"`
	DatetimeRemoved  string `json:"datetime_removed"`
	OriginalFileURL  string `json:"original_file_url"`
	URL              string `json:"url"`
}

// FileCopy is the response envelope of the file copy operation.
type FileCopy struct {
	Type   string   `json:"type"`
	Result FileInfo `json:"result"`
}

// FileList is one page of the file listing with pagination cursors.
type FileList struct {
	Next     string     `json:"next"`
	Previous string     `json:"previous"`
	Total    int64      `json:"total"`
	PerPage  int64      `json:"per_page"`
	Results  []FileInfo `json:"results"`
}

// GroupInfo describes a file group resource.
type GroupInfo struct {
	ID              string     `json:"id"`
	DatetimeCreated string     `json:"datetime_created"`
	DatetimeStored  string     `json:"datetime_stored"`
	FilesCount      int64      `json:"files_count"`
	CDNURL          string     `json:"cdn_url"`
	URL             string     `json:"url"`
	Files           []FileInfo `json:"files"`
}

// Webhook describes a webhook subscription of the REST API.
type Webhook struct {
	ID        int64  `json:"id"`
	Project   int64  `json:"project"`
	Event     string `json:"event"`
	TargetURL string `json:"target_url"`
	IsActive  bool   `json:"is_active"`
	Created   string `json:"created"`
	Updated   string `json:"updated"`
}

// Collaborator is a project collaborator entry.
type Collaborator struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Project describes the project resource of the REST API.
type Project struct {
	Name             string         `json:"name"`
	PubKey           string         `json:"pub_key"`
	AutostoreEnabled bool           `json:"autostore_enabled"`
	Collaborators    []Collaborator `json:"collaborators"`
}

// ListFilesConfig holds the query parameters for file listing.
type ListFilesConfig struct {
	// Removed includes only removed files when true
	Removed bool

	// Stored includes only stored files when true
	Stored bool

	// Limit caps the number of files per page
	Limit int

	// Ordering selects the sort order, e.g. "datetime_uploaded" or "size"
	Ordering string

	// From is the starting point of the listing, interpreted per Ordering
	From string
}

// ListFilesOption is a functional option for file listing.
type ListFilesOption func(*ListFilesConfig)
