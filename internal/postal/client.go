// Package postal validates US zip codes against a postal code lookup service.
package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"volcano-insurance-api/internal/observability"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public zippopotam.us endpoint.
const DefaultBaseURL = "https://api.zippopotam.us"

// Place is one locality served by a postal code.
type Place struct {
	Name              string `json:"place name"`
	State             string `json:"state"`
	StateAbbreviation string `json:"state abbreviation"`
	Latitude          string `json:"latitude"`
	Longitude         string `json:"longitude"`
}

// LookupResult is the body returned for a known postal code.
type LookupResult struct {
	PostCode            string  `json:"post code"`
	Country             string  `json:"country"`
	CountryAbbreviation string  `json:"country abbreviation"`
	Places              []Place `json:"places"`
}

// Client looks postal codes up over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	country    string
	metrics    *observability.Metrics
	logger     zerolog.Logger
}

// NewClient creates a lookup client. timeout bounds every request on top of
// any deadline carried by the caller's context.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		country:    "us",
		metrics:    metrics,
		logger:     logger,
	}
}

// Lookup returns the places for zip, or nil when the postal code is unknown.
func (c *Client) Lookup(ctx context.Context, zip string) (*LookupResult, error) {
	u := fmt.Sprintf("%s/%s/%s", c.baseURL, c.country, url.PathEscape(zip))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("postal: create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.PostalLookupDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.PostalLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("postal: lookup request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		c.metrics.PostalLookups.WithLabelValues("invalid").Inc()
		return nil, nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.metrics.PostalLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("postal: API error: status %d: %s", resp.StatusCode, body)
	}

	var result LookupResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.metrics.PostalLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("postal: decode response: %w", err)
	}

	// An empty body also means the code is unknown.
	if len(result.Places) == 0 || result.CountryAbbreviation == "" {
		c.metrics.PostalLookups.WithLabelValues("invalid").Inc()
		return nil, nil
	}

	c.metrics.PostalLookups.WithLabelValues("valid").Inc()
	return &result, nil
}

// IsValid reports whether zip is a known US postal code.
func (c *Client) IsValid(ctx context.Context, zip string) (bool, error) {
	result, err := c.Lookup(ctx, zip)
	if err != nil {
		c.logger.Warn().Err(err).Str("zip_code", zip).Msg("postal lookup failed")
		return false, err
	}
	return result != nil, nil
}
