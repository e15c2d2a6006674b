// Package model contains the data models and DTOs for the channel lookup
// service.
package model

// VerificationStatus is the channel verification badge state.
type VerificationStatus string

// VerificationStatus constants. OAC is the "Official Artist Channel" badge.
const (
	VerificationNone     VerificationStatus = "none"
	VerificationVerified VerificationStatus = "verified"
	VerificationOAC      VerificationStatus = "oac"
)

// Channel is the canonical record for one creator account. It is built fresh
// per lookup request and never persisted.
//
// The trailing four fields are populated only by the innertube enrichment
// step. They stay nil when enrichment never ran or failed; when enrichment
// detects a conditional redirect, only ConditionalRedirect is set and the
// record is a pointer to another identifier rather than a complete channel.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Channel struct {
	UserID             string   `json:"user_id"`
	DisplayName        *string  `json:"display_name"`
	Description        *string  `json:"description"`
	Handle             *string  `json:"handle"`
	ProfilePicture     *string  `json:"profile_picture"`
	Banner             *string  `json:"banner"`
	CreatedAt          int64    `json:"created_at"`
	Country            *string  `json:"country"`
	ViewCount          int64    `json:"view_count"`
	SubscriberCount    int64    `json:"subscriber_count"`
	VideoCount         int64    `json:"video_count"`
	MadeForKids        bool     `json:"made_for_kids"`
	Keywords           []string `json:"keywords"`
	Trailer            *string  `json:"trailer"`
	AnalyticsAccountID *string  `json:"analytics_account_id"`

	ConditionalRedirect *string             `json:"conditional_redirect"`
	NoIndex             *bool               `json:"no_index"`
	Verification        *VerificationStatus `json:"verification"`
	BlockedCountries    []string            `json:"blocked_countries"`
}

// Video is a flat playlist item record. The stats fields are filled only when
// the caller asks for the videos.list enrichment pass.
//
//nolint:govet // fieldalignment: Accept minor memory overhead for better readability
type Video struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
	Livestream  bool   `json:"livestream"`
	Views       *int64 `json:"views"`
	Likes       *int64 `json:"likes"`
	Comments    *int64 `json:"comments"`
}

// Subscription is one entry of a channel's public subscription list.
type Subscription struct {
	ChannelID      string  `json:"channel_id"`
	Title          string  `json:"title"`
	CreatedAt      int64   `json:"created_at"`
	ProfilePicture *string `json:"profile_picture"`
}
