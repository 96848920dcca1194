package ucare

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/newtype0092/uploadcare-go/internal/validation"
	"github.com/newtype0092/uploadcare-go/uctypes"
)

// FileInfo retrieves the metadata of a single file.
//
// Errors:
//   - ErrInvalidInput: if the file identifier is empty
//   - ErrMissingSecretKey: if the client has no secret key configured
//   - ErrTransport / ErrMalformedResponse: wrapped in *errors.Error
func (c *Client) FileInfo(ctx context.Context, fileID string) (*uctypes.FileInfo, error) {
	if err := validation.ValidateFileID("fileInfo", fileID); err != nil {
		return nil, err
	}

	var info uctypes.FileInfo
	if err := c.rest(ctx, "fileInfo", http.MethodGet, "files/"+fileID+"/", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListFiles retrieves one page of the project's files. Pagination is
// cursor-based: feed the Next cursor back through WithFrom to continue.
//
// Example:
//
//	page, err := client.ListFiles(ctx,
//	    ucare.WithLimit(100),
//	    ucare.WithOrdering("-datetime_uploaded"),
//	    ucare.WithStored(),
//	)
func (c *Client) ListFiles(ctx context.Context, opts ...uctypes.ListFilesOption) (*uctypes.FileList, error) {
	config := &uctypes.ListFilesConfig{}
	for _, opt := range opts {
		opt(config)
	}

	query := url.Values{}
	if config.Limit > 0 {
		query.Set("limit", strconv.Itoa(config.Limit))
	}
	if config.Ordering != "" {
		query.Set("ordering", config.Ordering)
	}
	if config.From != "" {
		query.Set("from", config.From)
	}
	if config.Stored {
		query.Set("stored", "true")
	}
	if config.Removed {
		query.Set("removed", "true")
	}
	path := "files/"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var list uctypes.FileList
	if err := c.rest(ctx, "listFiles", http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// StoreFile makes a previously uploaded temporary file permanent.
func (c *Client) StoreFile(ctx context.Context, fileID string) (*uctypes.FileInfo, error) {
	if err := validation.ValidateFileID("storeFile", fileID); err != nil {
		return nil, err
	}

	var info uctypes.FileInfo
	if err := c.rest(ctx, "storeFile", http.MethodPut, "files/"+fileID+"/storage/", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// CopyFile creates a project-local copy of a stored file. The copy is a new
// file with its own identifier and lifecycle.
func (c *Client) CopyFile(ctx context.Context, fileID string) (*uctypes.FileInfo, error) {
	if err := validation.ValidateFileID("copyFile", fileID); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("source", fileID)

	var copied uctypes.FileCopy
	if err := c.rest(ctx, "copyFile", http.MethodPost, "files/", form, &copied); err != nil {
		return nil, err
	}
	return &copied.Result, nil
}

// DeleteFile removes a file. The file's metadata stays listable with a
// removal timestamp until purged server-side.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	if err := validation.ValidateFileID("deleteFile", fileID); err != nil {
		return err
	}
	return c.rest(ctx, "deleteFile", http.MethodDelete, "files/"+fileID+"/", nil, nil)
}
