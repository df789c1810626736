package wtt3

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"roomsync/internal/pkg/config"
	"roomsync/internal/pkg/errs"
)

// Client pulls paginated reservation listings from the WTT3 (Wyse Timetables)
// REST API.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.WTT3Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		logger:     logger,
	}
}

// FetchFirst requests the first page of `{base_url}/reservations`. Date
// filters are sent as query parameters only when set; the API key becomes a
// bearer header only when non-empty.
func (c *Client) FetchFirst(ctx context.Context, req FetchRequest) (*Page, error) {
	endpoint := strings.TrimRight(req.BaseURL, "/") + "/reservations"

	query := url.Values{}
	if req.StartDate != nil {
		query.Set("start_date", req.StartDate.Format(time.RFC3339))
	}
	if req.EndDate != nil {
		query.Set("end_date", req.EndDate.Format(time.RFC3339))
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	c.logger.Info("fetching reservations from WTT3 API", "endpoint", endpoint)
	return c.get(ctx, endpoint, req.APIKey)
}

// FetchNext follows a next-page link returned by a previous page.
func (c *Client) FetchNext(ctx context.Context, nextURL, apiKey string) (*Page, error) {
	return c.get(ctx, nextURL, apiKey)
}

func (c *Client) get(ctx context.Context, rawURL, apiKey string) (*Page, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build WTT3 request")
	}

	httpReq.Header.Set("Accept", "application/json")
	if apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Wrap(err, "WTT3 request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errs.Newf("WTT3 returned %s for %s", resp.Status, rawURL)
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, errs.Wrap(err, "failed to decode WTT3 page")
	}

	return &page, nil
}
