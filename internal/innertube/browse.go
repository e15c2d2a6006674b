package innertube

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ddd/youtube-lookup/internal/model"
	"github.com/ddd/youtube-lookup/internal/youtube"
)

const browseFieldmask = "onResponseReceivedActions.navigateAction.endpoint.browseEndpoint.browseId," +
	"header.pageHeaderRenderer.content.pageHeaderViewModel.title.dynamicTextViewModel.text.attachmentRuns.element.type.imageType.image.sources.clientResource.imageName," +
	"metadata.channelMetadataRenderer.ownerUrls," +
	"microformat.microformatDataRenderer(noindex,availableCountries)"

// Badge image names the title attachment uses for the two recognized
// verification states.
const (
	badgeOAC      = "AUDIO_BADGE"
	badgeVerified = "CHECK_CIRCLE_FILLED"
)

const handleOwnerURLPrefix = "http://www.youtube.com/@"

type browseRequest struct {
	Context  requestContext `json:"context"`
	BrowseID string         `json:"browseId"`
}

// Projection structs for the browse response, shaped by browseFieldmask. The
// badge sits at the bottom of a deeply nested title-attachment structure;
// every level is optional because channels without a badge omit the whole
// chain.

type browseResponse struct {
	Header                    *browseHeader    `json:"header"`
	OnResponseReceivedActions []receivedAction `json:"onResponseReceivedActions"`
	Microformat               *microformat     `json:"microformat"`
	Metadata                  *channelMetadata `json:"metadata"`
}

type receivedAction struct {
	NavigateAction *navigateAction `json:"navigateAction"`
}

type navigateAction struct {
	Endpoint struct {
		BrowseEndpoint *browseEndpoint `json:"browseEndpoint"`
	} `json:"endpoint"`
}

type browseHeader struct {
	PageHeaderRenderer *pageHeaderRenderer `json:"pageHeaderRenderer"`
}

type pageHeaderRenderer struct {
	Content *struct {
		PageHeaderViewModel *struct {
			Title *struct {
				DynamicTextViewModel *struct {
					Text *struct {
						AttachmentRuns []attachmentRun `json:"attachmentRuns"`
					} `json:"text"`
				} `json:"dynamicTextViewModel"`
			} `json:"title"`
		} `json:"pageHeaderViewModel"`
	} `json:"content"`
}

type attachmentRun struct {
	Element *struct {
		Type *struct {
			ImageType *struct {
				Image *struct {
					Sources []imageSource `json:"sources"`
				} `json:"image"`
			} `json:"imageType"`
		} `json:"type"`
	} `json:"element"`
}

type imageSource struct {
	ClientResource *struct {
		ImageName string `json:"imageName"`
	} `json:"clientResource"`
}

type microformat struct {
	MicroformatDataRenderer *struct {
		NoIndex            *bool    `json:"noindex"`
		AvailableCountries []string `json:"availableCountries"`
	} `json:"microformatDataRenderer"`
}

type channelMetadata struct {
	ChannelMetadataRenderer *struct {
		OwnerURLs []string `json:"ownerUrls"`
	} `json:"channelMetadataRenderer"`
}

// EnrichChannel performs the browse call for ch.UserID and merges the result
// in. When the response carries a navigation redirect to a different channel,
// only ConditionalRedirect is set and the rest of the record is left alone;
// the record then points at another identifier instead of being complete.
//
// Errors here are surfaced to the caller; whether they are fatal is the
// caller's decision.
func (c *Client) EnrichChannel(ctx context.Context, ch *model.Channel) error {
	req := browseRequest{
		Context:  webContext(browseClientVersion),
		BrowseID: ch.UserID,
	}

	body, err := c.post(ctx, youtube.EndpointBrowse, "/youtubei/v1/browse?prettyPrint=false", browseFieldmask, req)
	if err != nil {
		return err
	}

	var resp browseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return &youtube.ParseError{Op: "browse", Err: err}
	}

	if redirect := redirectTarget(resp.OnResponseReceivedActions); redirect != "" && redirect != ch.UserID {
		ch.ConditionalRedirect = &redirect
		return nil
	}

	if resp.Header != nil {
		verification := verificationFromBadge(badgeImageName(resp.Header))
		ch.Verification = &verification
	}

	if resp.Microformat != nil && resp.Microformat.MicroformatDataRenderer != nil {
		renderer := resp.Microformat.MicroformatDataRenderer
		ch.NoIndex = renderer.NoIndex
		if renderer.AvailableCountries != nil {
			ch.BlockedCountries = blockedCountries(renderer.AvailableCountries)
		}
	}

	if resp.Metadata != nil && resp.Metadata.ChannelMetadataRenderer != nil {
		for _, ownerURL := range resp.Metadata.ChannelMetadataRenderer.OwnerURLs {
			if handle, ok := strings.CutPrefix(ownerURL, handleOwnerURLPrefix); ok {
				ch.Handle = &handle
				break
			}
		}
	}

	return nil
}

func redirectTarget(actions []receivedAction) string {
	if len(actions) == 0 {
		return ""
	}
	first := actions[0]
	if first.NavigateAction == nil || first.NavigateAction.Endpoint.BrowseEndpoint == nil {
		return ""
	}
	return first.NavigateAction.Endpoint.BrowseEndpoint.BrowseID
}

// badgeImageName walks the title attachment chain down to the badge image
// name, returning "" anywhere the chain breaks off.
func badgeImageName(header *browseHeader) string {
	r := header.PageHeaderRenderer
	if r == nil || r.Content == nil || r.Content.PageHeaderViewModel == nil {
		return ""
	}
	title := r.Content.PageHeaderViewModel.Title
	if title == nil || title.DynamicTextViewModel == nil || title.DynamicTextViewModel.Text == nil {
		return ""
	}
	runs := title.DynamicTextViewModel.Text.AttachmentRuns
	if len(runs) == 0 {
		return ""
	}
	run := runs[0]
	if run.Element == nil || run.Element.Type == nil || run.Element.Type.ImageType == nil || run.Element.Type.ImageType.Image == nil {
		return ""
	}
	sources := run.Element.Type.ImageType.Image.Sources
	if len(sources) == 0 || sources[0].ClientResource == nil {
		return ""
	}
	return sources[0].ClientResource.ImageName
}

func verificationFromBadge(imageName string) model.VerificationStatus {
	switch imageName {
	case badgeOAC:
		return model.VerificationOAC
	case badgeVerified:
		return model.VerificationVerified
	default:
		return model.VerificationNone
	}
}
