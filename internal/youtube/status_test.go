package youtube

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyResponse_StatusTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"ok", 200, nil},
		{"too many requests", 429, ErrRatelimited},
		{"not found", 404, ErrNotFound},
		{"unauthorized", 401, ErrUnauthorized},
		{"internal error", 500, ErrInternal},
		{"service unavailable", 503, ErrInternal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ClassifyResponse(EndpointChannels, tt.status, nil)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestClassifyResponse_UnknownStatus(t *testing.T) {
	t.Parallel()

	err := ClassifyResponse(EndpointChannels, 418, []byte("short and stout"))

	var unknown *UnknownStatusError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, 418, unknown.StatusCode)
	assert.Equal(t, "short and stout", unknown.Body)
}

func TestClassifyResponse_ForbiddenQuotaOverride(t *testing.T) {
	t.Parallel()

	body := []byte(`{"error":{"message":"The request cannot be completed because you have exceeded your quota."}}`)

	// The quota prefix turns a 403 into a ratelimit on every endpoint.
	for _, ep := range []Endpoint{EndpointChannels, EndpointPlaylistItems, EndpointSubscriptions, EndpointVideos} {
		assert.ErrorIs(t, ClassifyResponse(ep, 403, body), ErrRatelimited, "endpoint %s", ep)
	}
}

func TestClassifyResponse_SubscriptionsMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		message string
		want    error
	}{
		{"Subscriptions could not be retrieved because the subscriber's account is closed.", ErrAccountClosed},
		{"Subscriptions could not be retrieved because the subscriber's account is suspended.", ErrAccountTerminated},
		{"The requester is not allowed to access the requested subscriptions.", ErrSubscriptionsPrivate},
		{"Something else entirely.", ErrForbidden},
	}

	for _, tt := range tests {
		body := []byte(`{"error":{"message":"` + tt.message + `"}}`)
		assert.ErrorIs(t, ClassifyResponse(EndpointSubscriptions, 403, body), tt.want, "message %q", tt.message)
	}
}

func TestClassifyResponse_SubscriptionsMessagesOnlyApplyToSubscriptions(t *testing.T) {
	t.Parallel()

	// The exact account-state strings classify as plain Forbidden anywhere
	// but the subscriptions endpoint.
	body := []byte(`{"error":{"message":"The requester is not allowed to access the requested subscriptions."}}`)

	err := ClassifyResponse(EndpointChannels, 403, body)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrSubscriptionsPrivate)
}

func TestClassifyResponse_ForbiddenBodyUnparseable(t *testing.T) {
	t.Parallel()

	err := ClassifyResponse(EndpointChannels, 403, []byte("not json"))

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestOutcomeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", outcomeLabel(nil))
	assert.Equal(t, "not_found", outcomeLabel(ErrNotFound))
	assert.Equal(t, "account_terminated", outcomeLabel(ErrAccountTerminated))
	assert.Equal(t, "unknown_status", outcomeLabel(&UnknownStatusError{StatusCode: 418}))
	assert.Equal(t, "parse_error", outcomeLabel(&ParseError{Op: "x", Err: errors.New("y")}))
}
