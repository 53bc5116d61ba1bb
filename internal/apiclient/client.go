// Package apiclient is a small HTTP client for the inventory backend,
// used by the upload flow to trigger photo analysis.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/smartonix/inventory-backend/internal/domain"
	"github.com/smartonix/inventory-backend/internal/transport/rest"
)

// Client calls the backend's REST API on behalf of an authenticated user.
type Client struct {
	http *resty.Client
}

// New creates a client for the given backend base URL. The bearer token is
// attached to every request.
func New(baseURL, token string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(token)

	return &Client{http: httpClient}
}

// AnalyzeItems submits uploaded photo URLs for analysis and returns the
// created items.
func (c *Client) AnalyzeItems(ctx context.Context, imageURLs []string) ([]rest.ItemResponse, error) {
	var (
		result  rest.AnalyzeResponse
		apiErr  rest.ErrorResponse
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(rest.AnalyzeRequest{ImageURLs: imageURLs}).
		SetResult(&result).
		Post("/v1/analyze-items")
	if err != nil {
		return nil, fmt.Errorf("analyze items: %w", err)
	}

	if resp.IsError() {
		msg := resp.Status()
		if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		if resp.StatusCode() == 401 {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, msg)
		}
		return nil, fmt.Errorf("analyze items: %s", msg)
	}

	return result.Items, nil
}
