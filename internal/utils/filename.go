package utils

import "strings"

// SafeFilename turns a document title into a name usable inside a
// Content-Disposition header: path separators, quotes, and control
// characters are stripped. Falls back to "document" when nothing
// printable remains.
func SafeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r == '/' || r == '\\' || r == '"':
			b.WriteRune('_')
		case r < 0x20 || r == 0x7f:
			// drop control characters
		default:
			b.WriteRune(r)
		}
	}

	name := strings.TrimSpace(b.String())
	if name == "" {
		return "document"
	}
	return name
}
