// Package usda fetches species data from the USDA PLANTS database and turns
// it into catalog records for the wetland plants that carry a wetland
// indicator status.
package usda

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public USDA PLANTS services API.
const DefaultBaseURL = "https://plantsservices.sc.egov.usda.gov/api"

// maxBodyBytes caps the size of a single API response.
const maxBodyBytes = 4 << 20

// Profile is the subset of the PlantProfile response used here.
type Profile struct {
	Symbol         string         `json:"Symbol"`
	CommonName     string         `json:"CommonName"`
	ScientificName string         `json:"ScientificName"`
	GrowthHabits   []string       `json:"GrowthHabits"`
	Durations      []string       `json:"Durations"`
	NativeStatuses []NativeStatus `json:"NativeStatuses"`
}

// NativeStatus is a per-region nativity record.
type NativeStatus struct {
	Region string `json:"Region"`
	Status string `json:"Status"`
}

// WetlandRecord is a per-region wetland indicator record.
type WetlandRecord struct {
	Region    string `json:"Region"`
	Indicator string `json:"Indicator"`
}

// Client is a minimal USDA PLANTS API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. An empty baseURL selects DefaultBaseURL and a
// nil httpClient a pooled client with a 30 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Close releases idle keep-alive connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Profile fetches the plant profile for symbol.
func (c *Client) Profile(ctx context.Context, symbol string) (*Profile, error) {
	var p Profile
	if err := c.getJSON(ctx, "PlantProfile", symbol, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Wetland fetches the wetland indicator records for symbol.
func (c *Client) Wetland(ctx context.Context, symbol string) ([]WetlandRecord, error) {
	var records []WetlandRecord
	if err := c.getJSON(ctx, "WetlandData", symbol, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, symbol string, target any) error {
	u := fmt.Sprintf("%s/%s?symbol=%s", c.baseURL, endpoint, url.QueryEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request for %s failed: %w", endpoint, symbol, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read %s response for %s: %w", endpoint, symbol, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s request for %s returned status %d", endpoint, symbol, resp.StatusCode)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode %s response for %s: %w", endpoint, symbol, err)
	}
	return nil
}
