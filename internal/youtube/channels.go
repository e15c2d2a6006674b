package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/ddd/youtube-lookup/internal/model"
)

const (
	channelParts     = "brandingSettings,id,snippet,statistics,status,localizations,topicDetails"
	channelFieldmask = "items(id,snippet(title,description,customUrl,publishedAt,country,thumbnails.default.url),statistics(subscriberCount,viewCount,videoCount),topicDetails.topicIds,brandingSettings(channel(keywords,unsubscribedTrailer,trackingAnalyticsAccountId),image.bannerExternalUrl),status.madeForKids)"
)

// Projection structs for the channels.list response, limited to the fieldmask
// above.

type channelListResponse struct {
	Items []apiChannel `json:"items"`
}

type apiChannel struct {
	ID               string             `json:"id"`
	Snippet          *channelSnippet    `json:"snippet"`
	Statistics       *channelStatistics `json:"statistics"`
	Status           *channelStatus     `json:"status"`
	BrandingSettings *brandingSettings  `json:"brandingSettings"`
}

type channelSnippet struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	CustomURL   *string     `json:"customUrl"`
	PublishedAt *string     `json:"publishedAt"`
	Thumbnails  *thumbnails `json:"thumbnails"`
	Country     *string     `json:"country"`
}

type thumbnails struct {
	Default *thumbnail `json:"default"`
}

type thumbnail struct {
	URL *string `json:"url"`
}

type channelStatistics struct {
	ViewCount       *string `json:"viewCount"`
	SubscriberCount *string `json:"subscriberCount"`
	VideoCount      *string `json:"videoCount"`
}

type channelStatus struct {
	MadeForKids *bool `json:"madeForKids"`
}

type brandingSettings struct {
	Channel *channelBranding `json:"channel"`
	Image   *channelImage    `json:"image"`
}

type channelBranding struct {
	Keywords                   *string `json:"keywords"`
	TrackingAnalyticsAccountID *string `json:"trackingAnalyticsAccountId"`
	UnsubscribedTrailer        *string `json:"unsubscribedTrailer"`
}

type channelImage struct {
	BannerExternalURL *string `json:"bannerExternalUrl"`
}

// ChannelByID fetches a channel by its UC… channel ID.
func (c *Client) ChannelByID(ctx context.Context, id string) (*model.Channel, error) {
	return c.channel(ctx, "id", id)
}

// ChannelByUsername fetches a channel by legacy username.
func (c *Client) ChannelByUsername(ctx context.Context, username string) (*model.Channel, error) {
	return c.channel(ctx, "forUsername", username)
}

// ChannelByHandle fetches a channel by @handle (sigil optional upstream).
func (c *Client) ChannelByHandle(ctx context.Context, handle string) (*model.Channel, error) {
	return c.channel(ctx, "forHandle", handle)
}

func (c *Client) channel(ctx context.Context, param, value string) (*model.Channel, error) {
	reqURL := fmt.Sprintf("%s/channels?part=%s&%s=%s",
		c.baseURL, channelParts, param, url.QueryEscape(value))

	body, err := c.get(ctx, EndpointChannels, reqURL, channelFieldmask)
	if err != nil {
		return nil, err
	}

	var resp channelListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ParseError{Op: "channels.list", Err: err}
	}

	// A well-formed 200 with no items is how the API reports a missing
	// channel for forUsername/forHandle lookups.
	if len(resp.Items) == 0 {
		return nil, ErrNotFound
	}
	item := resp.Items[len(resp.Items)-1]

	ch := &model.Channel{
		UserID: item.ID,
	}

	if s := item.Snippet; s != nil {
		ch.DisplayName = s.Title
		ch.Description = s.Description
		ch.Country = s.Country
		ch.CreatedAt = parseTimestamp(s.PublishedAt)
		ch.Handle = handleFromCustomURL(s.CustomURL)
		if s.Thumbnails != nil && s.Thumbnails.Default != nil && s.Thumbnails.Default.URL != nil {
			stripped := StripAssetPath(*s.Thumbnails.Default.URL, "https://yt3.ggpht.com/")
			ch.ProfilePicture = &stripped
		}
	}

	if st := item.Statistics; st != nil {
		ch.ViewCount = parseCount(st.ViewCount)
		ch.SubscriberCount = parseCount(st.SubscriberCount)
		ch.VideoCount = parseCount(st.VideoCount)
	}

	if item.Status != nil && item.Status.MadeForKids != nil {
		ch.MadeForKids = *item.Status.MadeForKids
	}

	if b := item.BrandingSettings; b != nil {
		if b.Channel != nil {
			if b.Channel.Keywords != nil {
				ch.Keywords = parseKeywords(*b.Channel.Keywords)
			}
			ch.Trailer = b.Channel.UnsubscribedTrailer
			ch.AnalyticsAccountID = b.Channel.TrackingAnalyticsAccountID
		}
		if b.Image != nil && b.Image.BannerExternalURL != nil {
			stripped := StripAssetPath(*b.Image.BannerExternalURL,
				"https://yt3.googleusercontent.com/", "https://lh3.googleusercontent.com/")
			ch.Banner = &stripped
		}
	}

	return ch, nil
}

// handleFromCustomURL extracts the handle from snippet.customUrl, which
// carries either an @handle or a legacy custom URL. Only the former counts.
func handleFromCustomURL(customURL *string) *string {
	if customURL == nil || !strings.HasPrefix(*customURL, "@") {
		return nil
	}
	h := strings.TrimPrefix(*customURL, "@")
	return &h
}

// StripAssetPath reduces an avatar/banner URL to its opaque base path: the
// known host prefix is removed and everything from the first '=' (sizing and
// format parameters) is cut.
func StripAssetPath(assetURL string, prefixes ...string) string {
	stripped := assetURL
	for _, p := range prefixes {
		if rest, ok := strings.CutPrefix(assetURL, p); ok {
			stripped = rest
			break
		}
	}
	if i := strings.IndexByte(stripped, '='); i >= 0 {
		stripped = stripped[:i]
	}
	return stripped
}
