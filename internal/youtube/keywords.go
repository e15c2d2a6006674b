package youtube

import "strings"

// parseKeywords splits the channel keywords field, a quoted space-delimited
// string like `"tag one" two "tag three"`. Double quotes toggle grouping,
// unquoted spaces split, backslashes are dropped outright, and empty tokens
// are discarded. An unterminated quote still flushes its token. This is
// neither CSV nor shell-word splitting and must stay exactly this way.
func parseKeywords(raw string) []string {
	tags := make([]string, 0)
	var current strings.Builder
	inQuotes := false

	flush := func() {
		tag := strings.TrimSpace(current.String())
		if tag != "" {
			tags = append(tags, tag)
		}
		current.Reset()
	}

	for _, r := range raw {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			flush()
		case r == '\\':
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tags
}
