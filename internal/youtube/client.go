// Package youtube implements the Data API v3 primitives: channel lookup,
// playlist items, subscriptions, and video stats. All requests use explicit
// X-Goog-Fieldmask projections and run their responses through the shared
// status classifier.
package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const defaultBaseURL = "https://youtube.googleapis.com/youtube/v3"

// MaxPageSize is the upstream cap on maxResults for list endpoints.
const MaxPageSize = 50

// Client is the Data API client. It holds the shared outbound connection
// pool; there is no other state, so a single Client serves all requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a Data API client. The API key is the single static
// credential; its absence is a bootstrap error, not something to discover per
// request.
func NewClient(httpClient *http.Client, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube: API key is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}, nil
}

// get issues a fieldmask-projected GET and returns the body of a 200
// response. Any other status comes back as a classified taxonomy error.
func (c *Client) get(ctx context.Context, endpoint Endpoint, url, fieldmask string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: build %s request: %w", endpoint, err)
	}
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-Fieldmask", fieldmask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube: %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("youtube: read %s response: %w", endpoint, err)
	}

	if err := ClassifyResponse(endpoint, resp.StatusCode, body); err != nil {
		return nil, err
	}

	return body, nil
}

// parseCount parses the decimal-string counters the API uses. Absent or
// malformed values read as 0.
func parseCount(s *string) int64 {
	if s == nil {
		return 0
	}
	n, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseTimestamp converts an RFC3339 publishedAt into unix seconds, 0 when
// absent or unparseable.
func parseTimestamp(s *string) int64 {
	if s == nil {
		return 0
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return 0
	}
	return t.Unix()
}
