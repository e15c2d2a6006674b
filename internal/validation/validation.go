// Package validation rejects malformed lookup requests before any upstream
// call is attempted.
package validation

import (
	"fmt"
	"regexp"

	"github.com/ddd/youtube-lookup/internal/service"
)

var channelIDRegex = regexp.MustCompile(`^UC[a-zA-Z0-9_-]{22}$`)

// maxIdentifierLength bounds every inbound identifier; upstream identifiers
// are all far shorter.
const maxIdentifierLength = 128

var lookupKinds = map[service.LookupKind]bool{
	service.KindCustomURL: true,
	service.KindVanity:    true,
	service.KindUsername:  true,
	service.KindHandle:    true,
	service.KindChannelID: true,
}

// ValidateLookup checks a channel lookup request.
func ValidateLookup(kind service.LookupKind, id string) error {
	if !lookupKinds[kind] {
		return fmt.Errorf("unknown lookup type: %q", kind)
	}
	if id == "" {
		return fmt.Errorf("id is required")
	}
	if len(id) > maxIdentifierLength {
		return fmt.Errorf("id exceeds maximum length of %d", maxIdentifierLength)
	}
	if kind == service.KindChannelID && !channelIDRegex.MatchString(id) {
		return fmt.Errorf("invalid channel ID format: %s", id)
	}
	return nil
}

// ValidateListID checks the owning ID of a paginated list request.
func ValidateListID(id string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	if len(id) > maxIdentifierLength {
		return fmt.Errorf("id exceeds maximum length of %d", maxIdentifierLength)
	}
	return nil
}

// IsValidChannelID reports whether s has the UC… channel ID shape.
func IsValidChannelID(s string) bool {
	return channelIDRegex.MatchString(s)
}
