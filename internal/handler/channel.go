// Package handler exposes the HTTP surface: channel lookup, paginated lists,
// health, and metrics.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ddd/youtube-lookup/internal/model"
	"github.com/ddd/youtube-lookup/internal/service"
	"github.com/ddd/youtube-lookup/internal/validation"
	"github.com/ddd/youtube-lookup/pkg/logger"
)

// channelResolver is what the handler needs from the resolver.
type channelResolver interface {
	Lookup(ctx context.Context, kind service.LookupKind, id string) (*service.LookupResult, error)
}

// ChannelHandler serves channel identity lookups.
type ChannelHandler struct {
	resolver channelResolver
}

// NewChannelHandler creates a new ChannelHandler.
func NewChannelHandler(resolver channelResolver) *ChannelHandler {
	return &ChannelHandler{resolver: resolver}
}

// ChannelLookupRequest is the lookup request body.
type ChannelLookupRequest struct {
	Type service.LookupKind `json:"type" binding:"required"`
	ID   string             `json:"id" binding:"required"`
}

// ChannelLookupResponse is the lookup response body.
type ChannelLookupResponse struct {
	Channel     *model.Channel `json:"channel"`
	RedirectURL *string        `json:"redirect_url"`
}

// HandleLookup handles POST /api/channel.
func (h *ChannelHandler) HandleLookup(c *gin.Context) {
	var req ChannelLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := validation.ValidateLookup(req.Type, req.ID); err != nil {
		sendError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.resolver.Lookup(c.Request.Context(), req.Type, req.ID)
	if err != nil {
		logger.Log.Info("channel lookup failed",
			zap.String("type", string(req.Type)),
			zap.String("id", req.ID),
			zap.Error(err),
		)
		sendClassifiedError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChannelLookupResponse{
		Channel:     result.Channel,
		RedirectURL: result.RedirectURL,
	})
}
