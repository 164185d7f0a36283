// Package geo guesses the user's country, first from an IP geolocation
// service and then from the local time zone.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNoCountry indicates the service answered without a country code.
var ErrNoCountry = errors.New("geolocation response has no country_code")

// Client is a thin HTTP wrapper for a JSON geolocation endpoint.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a client for url. A non-positive timeout means none.
func NewClient(url string, timeout time.Duration) *Client {
	hc := &http.Client{}
	if timeout > 0 {
		hc.Timeout = timeout
	}
	return &Client{url: url, http: hc}
}

type lookupResponse struct {
	CountryCode string `json:"country_code"`
}

// CountryCode fetches the caller's ISO country code, upper-cased.
func (c *Client) CountryCode(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request to %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("GET %s returned %d: %s", c.url, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var out lookupResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	code := strings.ToUpper(strings.TrimSpace(out.CountryCode))
	if code == "" {
		return "", ErrNoCountry
	}
	return code, nil
}
