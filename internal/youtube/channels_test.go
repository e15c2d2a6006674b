package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &Client{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
		apiKey:     "test-key",
	}
}

const channelFixture = `{
  "items": [{
    "id": "UCuAXFkgsw1L7xaCfnd5JJOw",
    "snippet": {
      "title": "Rick Astley",
      "description": "Official channel",
      "customUrl": "@rickastley",
      "publishedAt": "2015-02-01T00:00:00Z",
      "country": "GB",
      "thumbnails": {
        "default": {"url": "https://yt3.ggpht.com/abc123=s88-c-k-c0x00ffffff-no-rj"}
      }
    },
    "statistics": {
      "viewCount": "2000000",
      "subscriberCount": "3500000",
      "videoCount": "120"
    },
    "status": {"madeForKids": false},
    "brandingSettings": {
      "channel": {
        "keywords": "\"official music\" pop",
        "unsubscribedTrailer": "dQw4w9WgXcQ",
        "trackingAnalyticsAccountId": "UA-12345-1"
      },
      "image": {"bannerExternalUrl": "https://yt3.googleusercontent.com/banner456"}
    }
  }]
}`

func TestChannelByID(t *testing.T) {
	t.Parallel()

	var gotQuery map[string][]string
	var gotFieldmask, gotAPIKey string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotFieldmask = r.Header.Get("X-Goog-Fieldmask")
		gotAPIKey = r.Header.Get("X-Goog-Api-Key")
		w.Write([]byte(channelFixture))
	})

	ch, err := c.ChannelByID(context.Background(), "UCuAXFkgsw1L7xaCfnd5JJOw")
	require.NoError(t, err)

	assert.Equal(t, []string{"UCuAXFkgsw1L7xaCfnd5JJOw"}, gotQuery["id"])
	assert.Equal(t, channelFieldmask, gotFieldmask)
	assert.Equal(t, "test-key", gotAPIKey)

	assert.Equal(t, "UCuAXFkgsw1L7xaCfnd5JJOw", ch.UserID)
	require.NotNil(t, ch.DisplayName)
	assert.Equal(t, "Rick Astley", *ch.DisplayName)
	require.NotNil(t, ch.Handle)
	assert.Equal(t, "rickastley", *ch.Handle)
	assert.Equal(t, int64(1422748800), ch.CreatedAt)
	assert.Equal(t, int64(2000000), ch.ViewCount)
	assert.Equal(t, int64(3500000), ch.SubscriberCount)
	assert.Equal(t, int64(120), ch.VideoCount)
	assert.False(t, ch.MadeForKids)
	assert.Equal(t, []string{"official music", "pop"}, ch.Keywords)

	// Asset URLs are reduced to their opaque base paths.
	require.NotNil(t, ch.ProfilePicture)
	assert.Equal(t, "abc123", *ch.ProfilePicture)
	require.NotNil(t, ch.Banner)
	assert.Equal(t, "banner456", *ch.Banner)

	require.NotNil(t, ch.Trailer)
	assert.Equal(t, "dQw4w9WgXcQ", *ch.Trailer)
	require.NotNil(t, ch.AnalyticsAccountID)
	assert.Equal(t, "UA-12345-1", *ch.AnalyticsAccountID)

	// Enrichment-only fields stay unset on a plain Data API fetch.
	assert.Nil(t, ch.Verification)
	assert.Nil(t, ch.NoIndex)
	assert.Nil(t, ch.ConditionalRedirect)
}

func TestChannelByUsernameAndHandleParams(t *testing.T) {
	t.Parallel()

	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(channelFixture))
	})

	_, err := c.ChannelByUsername(context.Background(), "rickastley")
	require.NoError(t, err)
	assert.Equal(t, []string{"rickastley"}, gotQuery["forUsername"])

	_, err = c.ChannelByHandle(context.Background(), "rickastley")
	require.NoError(t, err)
	assert.Equal(t, []string{"rickastley"}, gotQuery["forHandle"])
}

func TestChannel_EmptyItemsIsNotFound(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	})

	_, err := c.ChannelByHandle(context.Background(), "nosuchhandle")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChannel_MissingItemsIsNotFound(t *testing.T) {
	t.Parallel()

	// forUsername misses come back as a bare 200 with no items key at all.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := c.ChannelByUsername(context.Background(), "nosuchuser")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestChannel_TakesLastItem(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [{"id": "UCfirst"}, {"id": "UClast"}]}`))
	})

	ch, err := c.ChannelByID(context.Background(), "whatever")
	require.NoError(t, err)
	assert.Equal(t, "UClast", ch.UserID)
}

func TestChannel_SparseResponse(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [{"id": "UCsparse"}]}`))
	})

	ch, err := c.ChannelByID(context.Background(), "UCsparse")
	require.NoError(t, err)
	assert.Equal(t, "UCsparse", ch.UserID)
	assert.Nil(t, ch.DisplayName)
	assert.Nil(t, ch.Handle)
	assert.Zero(t, ch.CreatedAt)
	assert.Zero(t, ch.SubscriberCount)
	assert.Nil(t, ch.Keywords)
}

func TestChannel_UpstreamStatusClassified(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.ChannelByID(context.Background(), "UCx")
	assert.ErrorIs(t, err, ErrRatelimited)
}

func TestHandleFromCustomURL(t *testing.T) {
	t.Parallel()

	handle := "@RickAstley"
	legacy := "c/rickastley"

	got := handleFromCustomURL(&handle)
	require.NotNil(t, got)
	assert.Equal(t, "RickAstley", *got)

	assert.Nil(t, handleFromCustomURL(&legacy))
	assert.Nil(t, handleFromCustomURL(nil))
}

func TestStripAssetPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		prefixes []string
		want     string
	}{
		{
			"avatar with sizing params",
			"https://yt3.ggpht.com/abc123=s88-c-k",
			[]string{"https://yt3.ggpht.com/"},
			"abc123",
		},
		{
			"no params",
			"https://yt3.ggpht.com/abc123",
			[]string{"https://yt3.ggpht.com/"},
			"abc123",
		},
		{
			"second prefix matches",
			"https://lh3.googleusercontent.com/banner=w1060",
			[]string{"https://yt3.googleusercontent.com/", "https://lh3.googleusercontent.com/"},
			"banner",
		},
		{
			"unknown host kept whole",
			"https://example.com/path=x",
			[]string{"https://yt3.ggpht.com/"},
			"https://example.com/path",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StripAssetPath(tt.url, tt.prefixes...))
		})
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := NewClient(nil, "")
	assert.Error(t, err)

	c, err := NewClient(nil, "key")
	require.NoError(t, err)
	assert.NotNil(t, c.httpClient)
	assert.Equal(t, defaultBaseURL, c.baseURL)
}
