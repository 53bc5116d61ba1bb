// Package objectstore uploads item photos to an S3-compatible storage
// service over its HTTP API and resolves their public URLs.
package objectstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/smartonix/inventory-backend/internal/config"
)

// Client talks to the storage service's object API.
type Client struct {
	http   *resty.Client
	bucket string
}

// New creates a storage client from config.
func New(cfg config.StorageConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.ServiceKey)

	return &Client{
		http:   httpClient,
		bucket: cfg.Bucket,
	}
}

// Upload stores an object under the given key and returns its public URL.
func (c *Client) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Post(fmt.Sprintf("/object/%s/%s", c.bucket, key))
	if err != nil {
		return "", fmt.Errorf("upload object %q: %w", key, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("upload object %q: storage returned %s", key, resp.Status())
	}

	return c.PublicURL(key), nil
}

// Delete removes an object. Missing objects are not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/object/%s/%s", c.bucket, key))
	if err != nil {
		return fmt.Errorf("delete object %q: %w", key, err)
	}
	if resp.IsError() && resp.StatusCode() != 404 {
		return fmt.Errorf("delete object %q: storage returned %s", key, resp.Status())
	}

	return nil
}

// PublicURL returns the publicly reachable URL for a stored object.
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.http.BaseURL, c.bucket, key)
}
