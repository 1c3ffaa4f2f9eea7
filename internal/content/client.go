package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/jonesrussell/gocompare/internal/config"
	"github.com/jonesrussell/gocompare/internal/logger"
)

// maxResponseBodyBytes limits the size of content API responses.
const maxResponseBodyBytes = 10 * 1024 * 1024 // 10 MB

// Reader defines the read operations of the content API.
type Reader interface {
	// SearchDevices returns device summaries matching the query.
	SearchDevices(ctx context.Context, query string) ([]DeviceSummary, error)
	// GetDeviceBySlug resolves a slug to a full device record.
	// Returns ErrNotFound when the slug resolves to no record.
	GetDeviceBySlug(ctx context.Context, slug string) (*Device, error)
}

// Ensure Client implements Reader
var _ Reader = (*Client)(nil)

// Client issues request/response calls against the GraphQL content endpoint.
// It owns no state beyond the HTTP client and never retries; callers
// re-trigger the equivalent action instead.
type Client struct {
	httpClient *http.Client
	endpoint   string
	pageSize   int
	log        logger.Interface
}

// NewClient creates a content API client from the given configuration.
func NewClient(cfg *config.ContentConfig, log logger.Interface) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		pageSize:   cfg.SearchPageSize,
		log:        log.WithComponent("content"),
	}
}

// SearchDevices returns device summaries matching the query.
func (c *Client) SearchDevices(ctx context.Context, query string) ([]DeviceSummary, error) {
	var data searchData
	if err := c.do(ctx, "search", searchDevicesQuery, map[string]any{
		"search": query,
		"first":  c.pageSize,
	}, &data); err != nil {
		return nil, err
	}

	results := make([]DeviceSummary, 0, len(data.Posts.Nodes))
	for i := range data.Posts.Nodes {
		node := &data.Posts.Nodes[i]
		results = append(results, DeviceSummary{
			ID:       node.ID,
			Slug:     node.Slug,
			Title:    node.Title,
			ImageURL: node.imageURL(),
		})
	}

	c.log.Debug("search completed", "query", query, "results", len(results))
	return results, nil
}

// GetDeviceBySlug resolves a slug to a full device record.
func (c *Client) GetDeviceBySlug(ctx context.Context, slug string) (*Device, error) {
	var data detailData
	if err := c.do(ctx, "detail", deviceBySlugQuery, map[string]any{
		"slug": slug,
	}, &data); err != nil {
		return nil, err
	}

	if data.Post == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}

	return &Device{
		ID:       data.Post.ID,
		Slug:     data.Post.Slug,
		Title:    data.Post.Title,
		ImageURL: data.Post.imageURL(),
		BodyHTML: data.Post.Content,
	}, nil
}

// do executes one GraphQL POST and decodes the data payload into out.
// Transport failures and non-2xx statuses become a NetworkError; a
// well-formed response with a non-empty errors array becomes an APIError.
func (c *Client) do(ctx context.Context, op, query string, variables map[string]any, out any) error {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &NetworkError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, gqlErr := range envelope.Errors {
			messages = append(messages, gqlErr.Message)
		}
		return &APIError{Op: op, Messages: messages}
	}

	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return &NetworkError{Op: op, Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return nil
}
