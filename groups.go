package ucare

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	ucerrors "github.com/newtype0092/uploadcare-go/errors"
	"github.com/newtype0092/uploadcare-go/internal/validation"
	"github.com/newtype0092/uploadcare-go/uctypes"
)

// CreateGroup assembles previously uploaded files into a group. Group
// creation goes through the upload API and needs only the public key.
func (c *Client) CreateGroup(ctx context.Context, fileIDs []string) (*uctypes.GroupInfo, error) {
	if len(fileIDs) == 0 {
		return nil, ucerrors.NewError("createGroup", ucerrors.ErrInvalidInput).
			WithMessage("file identifiers cannot be empty")
	}

	form := url.Values{}
	form.Set("pub_key", c.cfg.PublicKey)
	for i, id := range fileIDs {
		if err := validation.ValidateFileID("createGroup", id); err != nil {
			return nil, err
		}
		form.Set("files["+strconv.Itoa(i)+"]", id)
	}

	endpoint := strings.TrimSuffix(c.cfg.UploadBaseURL, "/") + "/group/"
	headers := make(http.Header)
	for key, values := range c.cfg.Headers {
		headers[key] = values
	}
	headers.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.transport.Send(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()), headers)
	if err != nil {
		return nil, ucerrors.NewTransportError("createGroup", endpoint, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ucerrors.NewTransportError("createGroup", endpoint, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, ucerrors.NewTransportError("createGroup", endpoint, fmt.Errorf("unexpected status %s", resp.Status))
	}

	var group uctypes.GroupInfo
	if err := c.codec.Decode(payload, &group); err != nil {
		return nil, ucerrors.NewMalformedResponseError("createGroup", err).WithURL(endpoint)
	}
	return &group, nil
}

// GroupInfo retrieves the metadata of a file group.
func (c *Client) GroupInfo(ctx context.Context, groupID string) (*uctypes.GroupInfo, error) {
	if err := validation.ValidateGroupID("groupInfo", groupID); err != nil {
		return nil, err
	}

	var group uctypes.GroupInfo
	if err := c.rest(ctx, "groupInfo", http.MethodGet, "groups/"+groupID+"/", nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// StoreGroup makes all files of a group permanent in one call.
func (c *Client) StoreGroup(ctx context.Context, groupID string) error {
	if err := validation.ValidateGroupID("storeGroup", groupID); err != nil {
		return err
	}
	return c.rest(ctx, "storeGroup", http.MethodPut, "groups/"+groupID+"/storage/", nil, nil)
}
