package textutil

import (
	"strings"
	"unicode"
)

// SanitizeTitleToken converts a record title into a lowercase filename token.
// Letters and digits are kept, hyphens and underscores pass through,
// whitespace runs collapse to a single underscore, and every other character
// is dropped. Returns "untitled" when nothing usable remains.
func SanitizeTitleToken(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "untitled"
	}
	var b strings.Builder
	pendingSpace := false
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSpace = false
			b.WriteRune(unicode.ToLower(r))
		case r == '-' || r == '_':
			if pendingSpace && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSpace = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			pendingSpace = true
		}
	}
	out := strings.Trim(b.String(), "_-")
	if out == "" {
		return "untitled"
	}
	return out
}

// SanitizeTypeToken normalizes a media type tag for use as a filename prefix.
// Unknown or empty tags become "media" rather than failing.
func SanitizeTypeToken(mediaType string) string {
	token := SanitizeTitleToken(mediaType)
	if token == "untitled" {
		return "media"
	}
	return token
}
