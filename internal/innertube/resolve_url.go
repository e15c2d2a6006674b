package innertube

import (
	"context"
	"encoding/json"

	"github.com/ddd/youtube-lookup/internal/youtube"
)

// ResolveKind tags the two shapes a navigation resolution can take.
type ResolveKind int

const (
	// KindBrowse means the URL lands on a channel page; BrowseID carries
	// the opaque channel identifier.
	KindBrowse ResolveKind = iota
	// KindURL means the URL redirects elsewhere; URL carries the absolute
	// target.
	KindURL
)

// ResolveResult is the outcome of resolving a YouTube-shaped URL. Exactly one
// payload field is meaningful, selected by Kind.
type ResolveResult struct {
	Kind     ResolveKind
	BrowseID string
	URL      string
}

type resolveURLRequest struct {
	Context requestContext `json:"context"`
	URL     string         `json:"url"`
}

type resolveURLResponse struct {
	Endpoint *resolvedEndpoint `json:"endpoint"`
}

type resolvedEndpoint struct {
	BrowseEndpoint *browseEndpoint `json:"browseEndpoint"`
	URLEndpoint    *urlEndpoint    `json:"urlEndpoint"`
}

type browseEndpoint struct {
	BrowseID string `json:"browseId"`
}

type urlEndpoint struct {
	URL string `json:"url"`
}

const resolveURLFieldmask = "endpoint(urlEndpoint.url,browseEndpoint.browseId)"

// ResolveURL asks the navigation endpoint what the given URL actually lands
// on. A nil result with nil error means the response carried no endpoint at
// all ("this URL resolves to nothing").
func (c *Client) ResolveURL(ctx context.Context, target string) (*ResolveResult, error) {
	req := resolveURLRequest{
		Context: webContext(resolveClientVersion),
		URL:     target,
	}

	body, err := c.post(ctx, youtube.EndpointResolveURL, "/youtubei/v1/navigation/resolve_url", resolveURLFieldmask, req)
	if err != nil {
		return nil, err
	}

	var resp resolveURLResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &youtube.ParseError{Op: "navigation.resolve_url", Err: err}
	}

	switch {
	case resp.Endpoint == nil:
		return nil, nil
	case resp.Endpoint.BrowseEndpoint != nil:
		return &ResolveResult{Kind: KindBrowse, BrowseID: resp.Endpoint.BrowseEndpoint.BrowseID}, nil
	case resp.Endpoint.URLEndpoint != nil:
		return &ResolveResult{Kind: KindURL, URL: resp.Endpoint.URLEndpoint.URL}, nil
	default:
		return nil, nil
	}
}
