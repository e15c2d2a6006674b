// Package innertube implements the two private-API primitives the resolver
// needs: URL resolution (navigation/resolve_url) and channel enrichment
// (browse). Both are unauthenticated POSTs with a WEB client context and
// explicit fieldmask projections.
package innertube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ddd/youtube-lookup/internal/youtube"
)

const defaultBaseURL = "https://www.youtube.com"

// Client versions pinned per endpoint; browse needs a newer frontend version
// than resolve_url for the pageHeaderViewModel layout.
const (
	resolveClientVersion = "2.20240101"
	browseClientVersion  = "2.20250108.06.00"
)

type innertubeClient struct {
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
}

type requestContext struct {
	Client innertubeClient `json:"client"`
}

func webContext(version string) requestContext {
	return requestContext{Client: innertubeClient{ClientName: "WEB", ClientVersion: version}}
}

// Client issues innertube calls over the shared outbound connection pool.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an innertube client. No credential is needed; the
// endpoints used here are public.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
	}
}

// post sends a JSON body and returns the raw 200 body; other statuses come
// back classified against the shared taxonomy.
func (c *Client) post(ctx context.Context, endpoint youtube.Endpoint, path, fieldmask string, payload any) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("innertube: encode %s request: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("innertube: build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Fieldmask", fieldmask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("innertube: %s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("innertube: read %s response: %w", endpoint, err)
	}

	if err := youtube.ClassifyResponse(endpoint, resp.StatusCode, body); err != nil {
		return nil, err
	}

	return body, nil
}
