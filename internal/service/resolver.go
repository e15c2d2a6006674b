// Package service contains the identity resolution logic that turns a
// caller-declared identifier kind plus string into a canonical channel.
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/ddd/youtube-lookup/internal/innertube"
	"github.com/ddd/youtube-lookup/internal/model"
	"github.com/ddd/youtube-lookup/internal/youtube"
	"github.com/ddd/youtube-lookup/pkg/logger"
)

// LookupKind is the caller's claim about what kind of identifier it holds.
// The resolver verifies the claim against reality; it does not settle for
// finding some channel.
type LookupKind string

// LookupKind constants, matching the wire format.
const (
	KindCustomURL LookupKind = "CUSTOM_URL"
	KindVanity    LookupKind = "VANITY"
	KindUsername  LookupKind = "USERNAME"
	KindHandle    LookupKind = "HANDLE"
	KindChannelID LookupKind = "CHANNEL_ID"
)

// NotFoundError is a resolver-level miss with a specific human reason
// ("Not a vanity URL", "This channel has been terminated", ...).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// InvalidLookupError reports a lookup whose claimed kind cannot be right for
// the identifier, detected mid-resolution.
type InvalidLookupError struct {
	Message string
}

func (e *InvalidLookupError) Error() string {
	return e.Message
}

// channelAPI is the Data API surface the resolver needs.
type channelAPI interface {
	ChannelByID(ctx context.Context, id string) (*model.Channel, error)
	ChannelByUsername(ctx context.Context, username string) (*model.Channel, error)
	ChannelByHandle(ctx context.Context, handle string) (*model.Channel, error)
	Subscriptions(ctx context.Context, channelID string, pageToken *string, maxResults int) ([]model.Subscription, *string, error)
}

// urlResolver is the navigation primitive; a nil result means "no endpoint".
type urlResolver interface {
	ResolveURL(ctx context.Context, url string) (*innertube.ResolveResult, error)
}

// channelEnricher is the browse-based enrichment primitive.
type channelEnricher interface {
	EnrichChannel(ctx context.Context, ch *model.Channel) error
}

// Resolver drives the per-kind lookup state machine. All sub-calls within one
// lookup run strictly sequentially; later probes only run when earlier ones
// have not already decided the outcome.
type Resolver struct {
	yt       channelAPI
	urls     urlResolver
	enricher channelEnricher
}

// NewResolver creates a resolver over the given upstream primitives.
func NewResolver(yt channelAPI, urls urlResolver, enricher channelEnricher) *Resolver {
	return &Resolver{
		yt:       yt,
		urls:     urls,
		enricher: enricher,
	}
}

// LookupResult is a canonical channel plus, for some kinds, the URL the
// identifier canonically redirects to.
type LookupResult struct {
	Channel     *model.Channel
	RedirectURL *string
}

// Lookup resolves the identifier according to its claimed kind.
func (r *Resolver) Lookup(ctx context.Context, kind LookupKind, id string) (*LookupResult, error) {
	switch kind {
	case KindCustomURL:
		return r.lookupCustomURL(ctx, id)
	case KindVanity:
		return r.lookupVanity(ctx, id)
	case KindUsername:
		return r.lookupDirect(ctx, r.yt.ChannelByUsername, id)
	case KindHandle:
		return r.lookupDirect(ctx, r.yt.ChannelByHandle, id)
	case KindChannelID:
		return r.lookupChannelID(ctx, id)
	default:
		return nil, &InvalidLookupError{Message: "unknown lookup type"}
	}
}

// lookupCustomURL handles the legacy "+name" form. It has no fallback: a miss
// on the +URL is terminal. A separate resolve of the bare uppercased form
// reports whether the custom URL has a canonical alias.
func (r *Resolver) lookupCustomURL(ctx context.Context, id string) (*LookupResult, error) {
	plusResult, err := r.urls.ResolveURL(ctx, "youtube.com/+"+id)
	if errors.Is(err, youtube.ErrNotFound) {
		return nil, &NotFoundError{Message: "Custom URL not found"}
	}
	if err != nil {
		return nil, err
	}
	if plusResult == nil {
		return nil, &NotFoundError{Message: "Custom URL not found"}
	}
	if plusResult.Kind != innertube.KindBrowse {
		return nil, &InvalidLookupError{Message: "Invalid custom URL - unexpected URL endpoint"}
	}

	ch, err := r.yt.ChannelByID(ctx, plusResult.BrowseID)
	if err != nil {
		return nil, err
	}
	r.enrich(ctx, ch)

	bareResult, err := r.urls.ResolveURL(ctx, "youtube.com/"+strings.ToUpper(id))
	if err != nil {
		return nil, err
	}

	var redirectURL *string
	if bareResult != nil && bareResult.Kind == innertube.KindURL {
		redirectURL = &bareResult.URL
	}

	return &LookupResult{Channel: ch, RedirectURL: redirectURL}, nil
}

// lookupVanity accepts the vanity claim only after verifying that neither the
// "+name" nor the "/user/name" alias lands on the same channel; either
// collision means the identifier is really one of those other kinds. The
// collision check short-circuits before any channel fetch.
func (r *Resolver) lookupVanity(ctx context.Context, id string) (*LookupResult, error) {
	mainResult, err := r.urls.ResolveURL(ctx, "youtube.com/"+strings.ToUpper(id))
	if err != nil {
		return nil, err
	}
	if mainResult == nil || mainResult.Kind != innertube.KindBrowse {
		return nil, &NotFoundError{Message: "Invalid vanity URL"}
	}
	mainID := mainResult.BrowseID

	// Probe outcomes other than a matching browse hit are ignored here;
	// the probes exist only to detect aliasing.
	for _, alias := range []string{"youtube.com/+" + id, "youtube.com/user/" + id} {
		res, err := r.urls.ResolveURL(ctx, alias)
		if err == nil && res != nil && res.Kind == innertube.KindBrowse && res.BrowseID == mainID {
			return nil, &NotFoundError{Message: "Not a vanity URL"}
		}
	}

	ch, err := r.yt.ChannelByID(ctx, mainID)
	if err != nil {
		return nil, err
	}
	r.enrich(ctx, ch)

	return &LookupResult{Channel: ch}, nil
}

// lookupDirect covers Username and Handle, which share their shape: fetch by
// the respective primitive, enrich, then check whether the channel's handle
// URL has drifted to a canonical redirect.
func (r *Resolver) lookupDirect(ctx context.Context, fetch func(context.Context, string) (*model.Channel, error), id string) (*LookupResult, error) {
	ch, err := fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	r.enrich(ctx, ch)

	redirectURL, err := r.handleRedirect(ctx, ch)
	if err != nil {
		return nil, err
	}

	return &LookupResult{Channel: ch, RedirectURL: redirectURL}, nil
}

// lookupChannelID fetches by ID; a miss triggers the secondary status probe,
// which can only sharpen the not-found reason, never recover the record.
func (r *Resolver) lookupChannelID(ctx context.Context, id string) (*LookupResult, error) {
	ch, err := r.yt.ChannelByID(ctx, id)
	if errors.Is(err, youtube.ErrNotFound) {
		return nil, r.probeChannelStatus(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	r.enrich(ctx, ch)

	redirectURL, err := r.handleRedirect(ctx, ch)
	if err != nil {
		return nil, err
	}

	return &LookupResult{Channel: ch, RedirectURL: redirectURL}, nil
}

// probeChannelStatus issues a minimal subscriptions call purely to read its
// failure classification: the subscriptions endpoint distinguishes closed and
// suspended accounts in a way the channels endpoint does not. Every other
// outcome, success and transport errors included, collapses to the generic
// reason. Always returns a NotFoundError.
func (r *Resolver) probeChannelStatus(ctx context.Context, channelID string) error {
	_, _, err := r.yt.Subscriptions(ctx, channelID, nil, 1)
	switch {
	case errors.Is(err, youtube.ErrAccountTerminated):
		return &NotFoundError{Message: "This channel has been terminated"}
	case errors.Is(err, youtube.ErrAccountClosed):
		return &NotFoundError{Message: "This channel has been deleted"}
	default:
		return &NotFoundError{Message: "Channel not found"}
	}
}

// handleRedirect resolves the channel's @handle URL and surfaces a redirect
// only when the resolution lands on a URL endpoint. That is the
// canonical-URL-drift signal, not an error.
func (r *Resolver) handleRedirect(ctx context.Context, ch *model.Channel) (*string, error) {
	if ch.Handle == nil {
		return nil, nil
	}

	res, err := r.urls.ResolveURL(ctx, "youtube.com/@"+*ch.Handle)
	if err != nil {
		return nil, err
	}
	if res != nil && res.Kind == innertube.KindURL {
		return &res.URL, nil
	}
	return nil, nil
}

// enrich runs the best-effort innertube merge. Failures are logged and
// deliberately swallowed: enrichment is additive and must never fail a lookup
// that already has a valid channel.
func (r *Resolver) enrich(ctx context.Context, ch *model.Channel) {
	if err := r.enricher.EnrichChannel(ctx, ch); err != nil {
		logger.Log.Warn("channel enrichment failed, returning channel without innertube fields",
			zap.String("channel_id", ch.UserID),
			zap.Error(err),
		)
	}
}
