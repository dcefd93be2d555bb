package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/mmcdole/mealbook/internal/domain"
)

const (
	searchPath = "/search.php"
	lookupPath = "/lookup.php"
)

// Client implements domain.CatalogClient for TheMealDB.
// Requests are never retried or cached; each call is a fresh round trip.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new TheMealDB API client.
// baseURL includes the API version and key, e.g. https://www.themealdb.com/api/json/v1/1
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest performs a GET against the catalog and decodes the meals envelope.
// Every failure is reported as domain.ErrNetwork.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) (*MealsResponse, error) {
	reqURL := c.baseURL + path
	if query != nil {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("catalog request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog request error", "status", resp.StatusCode, "url", reqURL)
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrNetwork, resp.StatusCode)
	}

	var out MealsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		c.logger.Error("catalog response not decodable", "url", reqURL, "error", err)
		return nil, fmt.Errorf("%w: failed to parse response: %v", domain.ErrNetwork, err)
	}
	return &out, nil
}

// Search returns recipes whose name matches query; "" lists the full catalog
func (c *Client) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	q := url.Values{}
	q.Set("s", query)

	resp, err := c.doRequest(ctx, searchPath, q)
	if err != nil {
		return nil, err
	}

	summaries := MapSummaries(resp.Meals)
	c.logger.Debug("catalog search", "query", query, "results", len(summaries))
	return summaries, nil
}

// Lookup returns the detail of a single recipe
func (c *Client) Lookup(ctx context.Context, id string) (*domain.RecipeDetail, error) {
	q := url.Values{}
	q.Set("i", id)

	resp, err := c.doRequest(ctx, lookupPath, q)
	if err != nil {
		return nil, err
	}

	if len(resp.Meals) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, id)
	}
	return MapDetail(resp.Meals[0]), nil
}
