package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ddd/youtube-lookup/internal/service"
)

func TestValidateLookup(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 129)

	tests := []struct {
		name    string
		kind    service.LookupKind
		id      string
		wantErr bool
	}{
		{"valid handle", service.KindHandle, "somecreator", false},
		{"valid username", service.KindUsername, "legacyuser", false},
		{"valid vanity", service.KindVanity, "brand", false},
		{"valid custom url", service.KindCustomURL, "pewdiepie", false},
		{"valid channel id", service.KindChannelID, "UCuAXFkgsw1L7xaCfnd5JJOw", false},
		{"unknown kind", service.LookupKind("PLAYLIST"), "x", true},
		{"empty id", service.KindHandle, "", true},
		{"id too long", service.KindHandle, long, true},
		{"channel id wrong prefix", service.KindChannelID, "UUuAXFkgsw1L7xaCfnd5JJOw", true},
		{"channel id too short", service.KindChannelID, "UCshort", true},
		{"channel id bad characters", service.KindChannelID, "UCuAXFkgsw1L7xaCfnd5JJ!w", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateLookup(tt.kind, tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateListID(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateListID("UUuAXFkgsw1L7xaCfnd5JJOw"))
	assert.Error(t, ValidateListID(""))
	assert.Error(t, ValidateListID(strings.Repeat("a", 129)))
}

func TestIsValidChannelID(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidChannelID("UCuAXFkgsw1L7xaCfnd5JJOw"))
	assert.False(t, IsValidChannelID("uCuAXFkgsw1L7xaCfnd5JJOw"))
	assert.False(t, IsValidChannelID("UCuAXFkgsw1L7xaCfnd5JJOwX"))
	assert.False(t, IsValidChannelID(""))
}
