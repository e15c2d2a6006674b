package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"single word", "gaming", []string{"gaming"}},
		{"space separated", "gaming music vlogs", []string{"gaming", "music", "vlogs"}},
		{"quoted phrase", `"tag one" two "tag three"`, []string{"tag one", "two", "tag three"}},
		{"unterminated quote keeps remainder", `one "two three`, []string{"one", "two three"}},
		{"backslashes dropped", `foo\bar baz`, []string{"foobar", "baz"}},
		{"runs of spaces collapse", "a   b", []string{"a", "b"}},
		{"whitespace trimmed inside quotes", `" padded "`, []string{"padded"}},
		{"only spaces", "   ", []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseKeywords(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.NotNil(t, got)
		})
	}
}
