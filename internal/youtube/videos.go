package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ddd/youtube-lookup/internal/model"
)

const videosFieldmask = "items(id,statistics(viewCount,likeCount,commentCount),liveStreamingDetails(actualStartTime,concurrentViewers))"

type videosResponse struct {
	Items []apiVideo `json:"items"`
}

type apiVideo struct {
	ID                   string                `json:"id"`
	Statistics           *videoStatistics      `json:"statistics"`
	LiveStreamingDetails *liveStreamingDetails `json:"liveStreamingDetails"`
}

type videoStatistics struct {
	ViewCount    *string `json:"viewCount"`
	LikeCount    *string `json:"likeCount"`
	CommentCount *string `json:"commentCount"`
}

type liveStreamingDetails struct {
	ActualStartTime   *string `json:"actualStartTime"`
	ConcurrentViewers *string `json:"concurrentViewers"`
}

// PopulateVideoStats fills view/like/comment counts and the livestream flag
// for the given videos in place, batching videos.list calls in chunks of 50.
// Videos absent from the response keep their zero-value stats.
func (c *Client) PopulateVideoStats(ctx context.Context, videos []model.Video) error {
	if len(videos) == 0 {
		return nil
	}

	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.VideoID)
	}

	type stats struct {
		livestream             bool
		views, likes, comments *int64
	}
	statsByID := make(map[string]stats, len(videos))

	for start := 0; start < len(ids); start += MaxPageSize {
		end := min(start+MaxPageSize, len(ids))

		reqURL := fmt.Sprintf("%s/videos?id=%s&part=liveStreamingDetails,statistics",
			c.baseURL, strings.Join(ids[start:end], ","))

		body, err := c.get(ctx, EndpointVideos, reqURL, videosFieldmask)
		if err != nil {
			return err
		}

		var resp videosResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return &ParseError{Op: "videos.list", Err: err}
		}

		for _, item := range resp.Items {
			entry := stats{livestream: item.LiveStreamingDetails != nil}
			if item.Statistics != nil {
				entry.views = optionalCount(item.Statistics.ViewCount)
				entry.likes = optionalCount(item.Statistics.LikeCount)
				entry.comments = optionalCount(item.Statistics.CommentCount)
			}
			statsByID[item.ID] = entry
		}
	}

	for i := range videos {
		if s, ok := statsByID[videos[i].VideoID]; ok {
			videos[i].Livestream = s.livestream
			videos[i].Views = s.views
			videos[i].Likes = s.likes
			videos[i].Comments = s.comments
		}
	}

	return nil
}

func optionalCount(s *string) *int64 {
	if s == nil {
		return nil
	}
	n, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
