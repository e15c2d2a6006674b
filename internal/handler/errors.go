package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ddd/youtube-lookup/internal/service"
	"github.com/ddd/youtube-lookup/internal/youtube"
)

// ErrorResponse is the JSON error body: a stable machine-readable code plus a
// human message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func sendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: code, Message: message})
}

// sendClassifiedError maps a resolver or upstream error onto the API's
// status/code table. Resolver-level misses carry their specific reason;
// taxonomy values map one-to-one; anything unclassified is a distinctly
// tagged 500 so clients can tell "upstream surface changed" from known kinds.
func sendClassifiedError(c *gin.Context, err error) {
	var notFound *service.NotFoundError
	var invalid *service.InvalidLookupError

	switch {
	case errors.As(err, &notFound):
		sendError(c, http.StatusNotFound, "not_found", notFound.Message)
	case errors.As(err, &invalid):
		sendError(c, http.StatusBadRequest, "invalid_request", invalid.Message)
	case errors.Is(err, youtube.ErrNotFound):
		sendError(c, http.StatusNotFound, "not_found", "Not found")
	case errors.Is(err, youtube.ErrRatelimited):
		sendError(c, http.StatusTooManyRequests, "rate_limited", "Rate limited")
	case errors.Is(err, youtube.ErrUnauthorized):
		sendError(c, http.StatusUnauthorized, "unauthorized", "Unauthorized")
	case errors.Is(err, youtube.ErrSubscriptionsPrivate):
		sendError(c, http.StatusForbidden, "subscriptions_private", "Subscriptions are private")
	case errors.Is(err, youtube.ErrForbidden):
		sendError(c, http.StatusForbidden, "forbidden", "Forbidden")
	case errors.Is(err, youtube.ErrAccountClosed):
		sendError(c, http.StatusGone, "account_closed", "Account is closed")
	case errors.Is(err, youtube.ErrAccountTerminated):
		sendError(c, http.StatusGone, "account_terminated", "Account is terminated")
	case errors.Is(err, youtube.ErrInternal):
		sendError(c, http.StatusInternalServerError, "internal_server_error", "Internal server error")
	default:
		sendError(c, http.StatusInternalServerError, "unknown_error", "Unknown error occurred")
	}
}
