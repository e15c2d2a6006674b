package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/ddd/youtube-lookup/internal/model"
)

const playlistItemsFieldmask = "nextPageToken,items(snippet(publishedAt,title,description,resourceId.videoId))"

type playlistItemsResponse struct {
	NextPageToken *string           `json:"nextPageToken"`
	Items         []apiPlaylistItem `json:"items"`
}

type apiPlaylistItem struct {
	Snippet *playlistItemSnippet `json:"snippet"`
}

type playlistItemSnippet struct {
	PublishedAt *string          `json:"publishedAt"`
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	ResourceID  *videoResourceID `json:"resourceId"`
}

type videoResourceID struct {
	VideoID *string `json:"videoId"`
}

// PlaylistItems fetches one page of a playlist. Records missing a required
// field (video ID, title, or timestamp) are dropped, never surfaced as a
// partial error.
func (c *Client) PlaylistItems(ctx context.Context, playlistID string, pageToken *string, maxResults int) ([]model.Video, *string, error) {
	reqURL := fmt.Sprintf("%s/playlistItems?playlistId=%s&part=snippet&maxResults=%d",
		c.baseURL, url.QueryEscape(playlistID), maxResults)
	if pageToken != nil {
		reqURL += "&pageToken=" + url.QueryEscape(*pageToken)
	}

	body, err := c.get(ctx, EndpointPlaylistItems, reqURL, playlistItemsFieldmask)
	if err != nil {
		return nil, nil, err
	}

	var resp playlistItemsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, nil, &ParseError{Op: "playlistItems.list", Err: err}
	}

	videos := make([]model.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		s := item.Snippet
		if s == nil || s.ResourceID == nil || s.ResourceID.VideoID == nil || s.Title == nil || s.PublishedAt == nil {
			continue
		}
		publishedAt, err := time.Parse(time.RFC3339, *s.PublishedAt)
		if err != nil {
			continue
		}

		description := ""
		if s.Description != nil {
			description = *s.Description
		}

		videos = append(videos, model.Video{
			VideoID:     *s.ResourceID.VideoID,
			Title:       *s.Title,
			Description: description,
			CreatedAt:   publishedAt.Unix(),
		})
	}

	return videos, resp.NextPageToken, nil
}
