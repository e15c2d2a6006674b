package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/ddd/youtube-lookup/internal/model"
)

const subscriptionsFieldmask = "nextPageToken,items(snippet(publishedAt,title,resourceId.channelId,thumbnails.default.url))"

type subscriptionsResponse struct {
	NextPageToken *string           `json:"nextPageToken"`
	Items         []apiSubscription `json:"items"`
}

type apiSubscription struct {
	Snippet *subscriptionSnippet `json:"snippet"`
}

type subscriptionSnippet struct {
	PublishedAt *string            `json:"publishedAt"`
	Title       *string            `json:"title"`
	ResourceID  *channelResourceID `json:"resourceId"`
	Thumbnails  *thumbnails        `json:"thumbnails"`
}

type channelResourceID struct {
	ChannelID *string `json:"channelId"`
}

// Subscriptions fetches one alphabetical page of a channel's public
// subscription list. maxResults is a parameter because the resolver's
// account-status probe asks for a single item. Incomplete records are
// silently dropped.
func (c *Client) Subscriptions(ctx context.Context, channelID string, pageToken *string, maxResults int) ([]model.Subscription, *string, error) {
	reqURL := fmt.Sprintf("%s/subscriptions?channelId=%s&part=snippet&order=alphabetical&maxResults=%d",
		c.baseURL, url.QueryEscape(channelID), maxResults)
	if pageToken != nil {
		reqURL += "&pageToken=" + url.QueryEscape(*pageToken)
	}

	body, err := c.get(ctx, EndpointSubscriptions, reqURL, subscriptionsFieldmask)
	if err != nil {
		return nil, nil, err
	}

	var resp subscriptionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, nil, &ParseError{Op: "subscriptions.list", Err: err}
	}

	subs := make([]model.Subscription, 0, len(resp.Items))
	for _, item := range resp.Items {
		s := item.Snippet
		if s == nil || s.ResourceID == nil || s.ResourceID.ChannelID == nil || s.Title == nil || s.PublishedAt == nil {
			continue
		}
		publishedAt, err := time.Parse(time.RFC3339, *s.PublishedAt)
		if err != nil {
			continue
		}

		sub := model.Subscription{
			ChannelID: *s.ResourceID.ChannelID,
			Title:     *s.Title,
			CreatedAt: publishedAt.Unix(),
		}
		if s.Thumbnails != nil && s.Thumbnails.Default != nil && s.Thumbnails.Default.URL != nil {
			stripped := StripAssetPath(*s.Thumbnails.Default.URL, "https://yt3.ggpht.com/")
			sub.ProfilePicture = &stripped
		}

		subs = append(subs, sub)
	}

	return subs, resp.NextPageToken, nil
}
