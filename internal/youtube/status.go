package youtube

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ddd/youtube-lookup/internal/metrics"
	"github.com/ddd/youtube-lookup/pkg/logger"
)

// Endpoint identifies which upstream surface a response came from. The
// subscriber-account-state refinements of 403 bodies apply only to the
// subscriptions endpoint.
type Endpoint string

const (
	EndpointChannels      Endpoint = "channels"
	EndpointPlaylistItems Endpoint = "playlist_items"
	EndpointSubscriptions Endpoint = "subscriptions"
	EndpointVideos        Endpoint = "videos"
	EndpointResolveURL    Endpoint = "resolve_url"
	EndpointBrowse        Endpoint = "browse"
)

// quotaExceededPrefix marks the 403 that is really a quota ratelimit. The
// upstream wording continues with the exact quota name, so only the prefix is
// stable.
const quotaExceededPrefix = "The request cannot be completed because you have exceeded your"

// subscriptionsForbiddenMessages maps the exact 403 message strings the
// subscriptions endpoint uses for account-state failures. Upstream wording
// changes silently demote these to ErrForbidden, so the table is kept in one
// place and covered by tests.
var subscriptionsForbiddenMessages = map[string]error{
	"Subscriptions could not be retrieved because the subscriber's account is closed.":    ErrAccountClosed,
	"Subscriptions could not be retrieved because the subscriber's account is suspended.": ErrAccountTerminated,
	"The requester is not allowed to access the requested subscriptions.":                 ErrSubscriptionsPrivate,
}

type upstreamErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ClassifyResponse maps an upstream HTTP response to the error taxonomy. It
// returns nil for 200. Every upstream-calling component routes its response
// through here, which also makes it the single point where outcome metrics
// are counted.
func ClassifyResponse(endpoint Endpoint, statusCode int, body []byte) error {
	err := classifyStatus(endpoint, statusCode, body)
	metrics.UpstreamRequests.WithLabelValues(string(endpoint), outcomeLabel(err)).Inc()
	return err
}

func classifyStatus(endpoint Endpoint, statusCode int, body []byte) error {
	switch statusCode {
	case http.StatusOK:
		return nil
	case http.StatusTooManyRequests:
		return ErrRatelimited
	case http.StatusForbidden:
		var parsed upstreamErrorBody
		if err := json.Unmarshal(body, &parsed); err != nil {
			return &ParseError{Op: "forbidden body", Err: err}
		}
		return classifyForbiddenMessage(endpoint, parsed.Error.Message)
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusInternalServerError, http.StatusServiceUnavailable:
		return ErrInternal
	default:
		logger.Log.Error("unknown upstream status",
			zap.String("endpoint", string(endpoint)),
			zap.Int("status", statusCode),
			zap.ByteString("body", body),
		)
		return &UnknownStatusError{StatusCode: statusCode, Body: string(body)}
	}
}

// classifyForbiddenMessage is the pure lookup for 403 bodies. The quota
// prefix overrides the raw 403 on every endpoint; the exact-match table only
// applies to subscriptions responses.
func classifyForbiddenMessage(endpoint Endpoint, message string) error {
	if strings.HasPrefix(message, quotaExceededPrefix) {
		return ErrRatelimited
	}

	if endpoint == EndpointSubscriptions {
		if err, ok := subscriptionsForbiddenMessages[message]; ok {
			return err
		}
	}

	logger.Log.Warn("unrecognized forbidden message",
		zap.String("endpoint", string(endpoint)),
		zap.String("message", message),
	)
	return ErrForbidden
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrRatelimited):
		return "ratelimited"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrInternal):
		return "internal_error"
	case errors.Is(err, ErrAccountClosed):
		return "account_closed"
	case errors.Is(err, ErrAccountTerminated):
		return "account_terminated"
	case errors.Is(err, ErrSubscriptionsPrivate):
		return "subscriptions_private"
	default:
		var unknown *UnknownStatusError
		if errors.As(err, &unknown) {
			return "unknown_status"
		}
		return "parse_error"
	}
}
