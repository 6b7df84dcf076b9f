package content

import "strings"

// Slugify lowercases title, turns spaces into hyphens and drops every character
// outside [A-Za-z0-9_-]. Non-ASCII letters are dropped, not transliterated.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r == ' ' || r == '-':
			b.WriteRune('-')
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}
