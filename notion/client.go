package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// BaseURL is the base URL for the Notion API.
	BaseURL = "https://api.notion.com/v1"
	// Version is the Notion API version sent with every request.
	Version = "2022-06-28"

	// childPageSize is the page size used when paginating block children.
	childPageSize = 100
)

// Client is a Notion API client.
type Client struct {
	httpClient *http.Client
	token      string
	baseURL    string
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithLogger sets the client logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new Notion API client.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		token:      token,
		baseURL:    BaseURL,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetPage retrieves a page by ID.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	url := fmt.Sprintf("%s/pages/%s", c.baseURL, normalizeID(pageID))

	var page Page
	if err := c.do(ctx, http.MethodGet, url, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBlock retrieves a single block by ID. Used to refresh blocks whose
// hosted file URL has expired, so it deliberately bypasses any caching
// layered on top of the client.
func (c *Client) GetBlock(ctx context.Context, blockID string) (*Block, error) {
	url := fmt.Sprintf("%s/blocks/%s", c.baseURL, normalizeID(blockID))

	var block Block
	if err := c.do(ctx, http.MethodGet, url, nil, &block); err != nil {
		return nil, err
	}
	return &block, nil
}

// GetBlockChildren retrieves the full, flat list of direct children of
// a block, following pagination cursors until exhausted.
func (c *Client) GetBlockChildren(ctx context.Context, blockID string) (*BlockList, error) {
	base := fmt.Sprintf("%s/blocks/%s/children?page_size=%d", c.baseURL, normalizeID(blockID), childPageSize)

	all := &BlockList{Object: "list"}
	cursor := ""
	for {
		url := base
		if cursor != "" {
			url += "&start_cursor=" + cursor
		}

		var list BlockList
		if err := c.do(ctx, http.MethodGet, url, nil, &list); err != nil {
			return nil, err
		}
		all.Results = append(all.Results, list.Results...)

		if !list.HasMore || list.NextCursor == "" {
			return all, nil
		}
		cursor = list.NextCursor
	}
}

// QueryDatabase queries a database with the given filter and sorts.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, query *DatabaseQuery) (*PageList, error) {
	url := fmt.Sprintf("%s/databases/%s/query", c.baseURL, normalizeID(databaseID))

	var list PageList
	if err := c.do(ctx, http.MethodPost, url, query, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// do performs one API request and unmarshals the response into out.
func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	c.log.Debug().Str("method", method).Str("url", url).Msg("notion api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr APIError
		if err := json.Unmarshal(respBody, &apiErr); err != nil {
			return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
		}
		return &apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// setHeaders sets common headers for Notion API requests.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", Version)
}

// normalizeID normalizes a page or block ID by removing hyphens.
func normalizeID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}
