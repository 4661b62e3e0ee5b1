package keys

import "strings"

// ThemeKey produces a canonical key for a player-entered theme: trimmed,
// lower-cased, inner whitespace collapsed to single underscores. Suitable
// for deduplicating concurrent generation requests for the same theme.
func ThemeKey(theme string) string {
	parts := strings.Fields(strings.ToLower(theme))
	return strings.Join(parts, "_")
}
