package ucare

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	ucerrors "github.com/newtype0092/uploadcare-go/errors"
	"github.com/newtype0092/uploadcare-go/internal/validation"
	"github.com/newtype0092/uploadcare-go/uctypes"
)

// ListWebhooks retrieves all webhook subscriptions of the project.
func (c *Client) ListWebhooks(ctx context.Context) ([]uctypes.Webhook, error) {
	var hooks []uctypes.Webhook
	if err := c.rest(ctx, "listWebhooks", http.MethodGet, "webhooks/", nil, &hooks); err != nil {
		return nil, err
	}
	return hooks, nil
}

// CreateWebhook subscribes a target URL to an event, e.g. "file.uploaded".
func (c *Client) CreateWebhook(ctx context.Context, targetURL, event string, isActive bool) (*uctypes.Webhook, error) {
	if err := validation.ValidateTargetURL("createWebhook", targetURL); err != nil {
		return nil, err
	}
	if event == "" {
		return nil, ucerrors.NewError("createWebhook", ucerrors.ErrInvalidInput).
			WithMessage("event cannot be empty")
	}

	form := url.Values{}
	form.Set("target_url", targetURL)
	form.Set("event", event)
	form.Set("is_active", strconv.FormatBool(isActive))

	var hook uctypes.Webhook
	if err := c.rest(ctx, "createWebhook", http.MethodPost, "webhooks/", form, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

// UpdateWebhook changes an existing subscription in place.
func (c *Client) UpdateWebhook(ctx context.Context, id int64, targetURL, event string, isActive bool) (*uctypes.Webhook, error) {
	if id <= 0 {
		return nil, ucerrors.NewError("updateWebhook", ucerrors.ErrInvalidInput).
			WithMessage("webhook id must be positive")
	}

	form := url.Values{}
	if targetURL != "" {
		form.Set("target_url", targetURL)
	}
	if event != "" {
		form.Set("event", event)
	}
	form.Set("is_active", strconv.FormatBool(isActive))

	var hook uctypes.Webhook
	path := "webhooks/" + strconv.FormatInt(id, 10) + "/"
	if err := c.rest(ctx, "updateWebhook", http.MethodPut, path, form, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

// DeleteWebhook unsubscribes a target URL.
func (c *Client) DeleteWebhook(ctx context.Context, targetURL string) error {
	if err := validation.ValidateTargetURL("deleteWebhook", targetURL); err != nil {
		return err
	}

	form := url.Values{}
	form.Set("target_url", targetURL)
	return c.rest(ctx, "deleteWebhook", http.MethodDelete, "webhooks/unsubscribe/", form, nil)
}
