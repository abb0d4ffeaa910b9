// Package sheets provides a client for fetching keyword rows from the
// agency's Google Sheets document over the values REST API.
package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
	defaultRange   = "A:Z"
)

var (
	// ErrUnauthorized indicates the API key is invalid or revoked.
	ErrUnauthorized = errors.New("sheets: unauthorized (API key invalid or revoked)")
	// ErrRateLimited indicates the API quota was exhausted.
	ErrRateLimited = errors.New("sheets: rate limited")
)

// Client fetches cell values from one spreadsheet.
type Client struct {
	sheetID string
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given sheet and API key.
// Returns nil if either is empty, so callers can treat a missing
// configuration as "no spreadsheet".
func NewClient(sheetID, apiKey, baseURL string) *Client {
	sheetID = strings.TrimSpace(sheetID)
	apiKey = strings.TrimSpace(apiKey)
	if sheetID == "" || apiKey == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		sheetID: sheetID,
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
	}
}

// valuesResponse mirrors the values endpoint payload. Cells arrive as
// untyped JSON and are flattened to strings.
type valuesResponse struct {
	Values [][]json.RawMessage `json:"values"`
}

// Rows returns every row of the first sheet, header included.
func (c *Client) Rows(ctx context.Context) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	u := fmt.Sprintf("%s/%s/values/%s?key=%s",
		c.baseURL, url.PathEscape(c.sheetID), url.PathEscape(defaultRange), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("sheets: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("sheets: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("sheets: reading response: %w", err)
	}

	var raw valuesResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("sheets: parsing values: %w", err)
	}

	rows := make([][]string, len(raw.Values))
	for i, r := range raw.Values {
		cells := make([]string, len(r))
		for j, cell := range r {
			cells[j] = cellString(cell)
		}
		rows[i] = cells
	}
	return rows, nil
}

// cellString flattens a raw JSON cell to its text. Numbers and bools
// keep their literal form.
func cellString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}
