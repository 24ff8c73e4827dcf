// Package discovery is the HTTP client for the external lead-discovery
// provider. The provider does the web searching; this client only asks for
// and decodes its structured results.
package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"outreach-engine/internal/config/configs"
	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/port"
)

// Client implements port.LeadProvider against GET {base}/v1/leads.
type Client struct {
	base   string
	apiKey string
	hc     *http.Client
}

// New returns a client for the configured provider.
func New(cfg configs.Discovery) *Client {
	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey: cfg.APIKey,
		hc:     &http.Client{Timeout: cfg.Timeout},
	}
}

type searchResponse struct {
	Leads []domain.RawLead `json:"leads"`
}

// Search asks the provider for up to q.Count leads. Any failure, including
// a non-2xx status, is wrapped in domain.ErrUpstreamUnavailable.
func (c *Client) Search(ctx context.Context, q port.SearchQuery) ([]domain.RawLead, error) {
	v := url.Values{}
	v.Set("niche", q.Niche)
	if q.Location != "" {
		v.Set("location", q.Location)
	}
	if q.Count > 0 {
		v.Set("count", strconv.Itoa(q.Count))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/v1/leads?"+v.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("discovery request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: discovery get: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("%w: discovery status %d: %s", domain.ErrUpstreamUnavailable, res.StatusCode, strings.TrimSpace(string(msg)))
	}

	var body searchResponse
	if err = json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode discovery response: %v", domain.ErrUpstreamUnavailable, err)
	}
	if q.Count > 0 && len(body.Leads) > q.Count {
		body.Leads = body.Leads[:q.Count]
	}
	return body.Leads, nil
}
