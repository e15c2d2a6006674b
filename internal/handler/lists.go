package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ddd/youtube-lookup/internal/model"
	"github.com/ddd/youtube-lookup/internal/validation"
	"github.com/ddd/youtube-lookup/internal/youtube"
	"github.com/ddd/youtube-lookup/pkg/logger"
)

// listAPI is the Data API surface the list handlers need.
type listAPI interface {
	PlaylistItems(ctx context.Context, playlistID string, pageToken *string, maxResults int) ([]model.Video, *string, error)
	Subscriptions(ctx context.Context, channelID string, pageToken *string, maxResults int) ([]model.Subscription, *string, error)
	PopulateVideoStats(ctx context.Context, videos []model.Video) error
}

// ListHandler serves the two paginated list endpoints.
type ListHandler struct {
	yt listAPI
}

// NewListHandler creates a new ListHandler.
func NewListHandler(yt listAPI) *ListHandler {
	return &ListHandler{yt: yt}
}

// PaginatedRequest is the shared request body for list endpoints. The stats
// flag only has an effect on playlist items.
type PaginatedRequest struct {
	ID           string  `json:"id" binding:"required"`
	PageToken    *string `json:"page_token"`
	IncludeStats bool    `json:"include_stats"`
}

// PlaylistItemsResponse is the playlist items page.
type PlaylistItemsResponse struct {
	Items     []model.Video `json:"items"`
	PageToken *string       `json:"page_token"`
}

// SubscriptionsResponse is the subscriptions page.
type SubscriptionsResponse struct {
	Items     []model.Subscription `json:"items"`
	PageToken *string              `json:"page_token"`
}

// HandlePlaylistItems handles POST /api/playlist_items.
func (h *ListHandler) HandlePlaylistItems(c *gin.Context) {
	req, ok := bindPaginated(c)
	if !ok {
		return
	}

	items, pageToken, err := h.yt.PlaylistItems(c.Request.Context(), req.ID, req.PageToken, youtube.MaxPageSize)
	if err != nil {
		logger.Log.Info("playlist items fetch failed", zap.String("id", req.ID), zap.Error(err))
		sendClassifiedError(c, err)
		return
	}

	if req.IncludeStats {
		if err := h.yt.PopulateVideoStats(c.Request.Context(), items); err != nil {
			logger.Log.Info("video stats fetch failed", zap.String("id", req.ID), zap.Error(err))
			sendClassifiedError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, PlaylistItemsResponse{Items: items, PageToken: pageToken})
}

// HandleSubscriptions handles POST /api/subscriptions.
func (h *ListHandler) HandleSubscriptions(c *gin.Context) {
	req, ok := bindPaginated(c)
	if !ok {
		return
	}

	items, pageToken, err := h.yt.Subscriptions(c.Request.Context(), req.ID, req.PageToken, youtube.MaxPageSize)
	if err != nil {
		logger.Log.Info("subscriptions fetch failed", zap.String("id", req.ID), zap.Error(err))
		sendClassifiedError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubscriptionsResponse{Items: items, PageToken: pageToken})
}

func bindPaginated(c *gin.Context) (PaginatedRequest, bool) {
	var req PaginatedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return req, false
	}
	if err := validation.ValidateListID(req.ID); err != nil {
		sendError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return req, false
	}
	return req, true
}
