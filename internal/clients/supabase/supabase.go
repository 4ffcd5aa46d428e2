// Package supabase implements the product lookup against a hosted Supabase
// table via the PostgREST API.
package supabase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/storekit/whatsapp-replies-api/internal/products"
)

const (
	productsPath = "/rest/v1/products"

	defaultQueryTimeout = 10 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
	defaultMatchLimit   = 10
)

// Client for the Supabase REST API.
type Client struct {
	baseURL    string
	apiKey     string
	logger     zerolog.Logger
	httpClient *http.Client
}

// New creates a new Client. Both the project URL and the API key are required;
// a missing credential is a configuration fault surfaced at startup, before any
// request is attempted.
func New(baseURL, apiKey string, logger zerolog.Logger) (*Client, error) {
	if baseURL == "" || apiKey == "" {
		return nil, fmt.Errorf("supabase URL and key are required for the supabase product backend")
	}
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse supabase URL: %w", err)
	}
	return &Client{
		baseURL: strings.TrimSuffix(parsedURL.String(), "/"),
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: defaultQueryTimeout,
		},
	}, nil
}

// FindByTerm queries the products table for rows whose name, model, or sku
// contains term, case-insensitively, capped at limit. A blank term and an
// unmatched term both yield an empty result, not an error.
func (c *Client) FindByTerm(ctx context.Context, term string, limit int) ([]products.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = defaultMatchLimit
	}

	// PostgREST or= filters use commas and parentheses as syntax, so those are
	// stripped from the term before it is placed inside the filter.
	pattern := "%" + sanitizeFilterValue(term) + "%"
	params := url.Values{}
	params.Set("select", "id,name,model,sku,price,stock,category,description")
	params.Set("or", fmt.Sprintf("(name.ilike.%s,model.ilike.%s,sku.ilike.%s)", pattern, pattern, pattern))
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+productsPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query supabase products: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return nil, fmt.Errorf("supabase returned status code %d: %s", resp.StatusCode, string(respBody))
	}

	rows, err := decodeProductRows(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode supabase response: %w", err)
	}

	matches := make([]products.Product, len(rows))
	for i, row := range rows {
		matches[i] = row.toProduct()
	}
	c.logger.Debug().Int("count", len(matches)).Str("term", term).Msg("supabase product query returned")
	return matches, nil
}

func sanitizeFilterValue(term string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '"', ',', '(', ')':
			return -1
		}
		return r
	}, term)
}
