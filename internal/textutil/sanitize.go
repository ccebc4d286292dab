// Package textutil holds helpers for putting untrusted text on a terminal.
package textutil

import (
	"strings"
	"unicode"
)

// SanitizeTerminalText replaces control characters so file names cannot
// inject terminal escape sequences when rendered. Invisible formatting runes
// (bidi overrides, zero-width joiners) become a visible marker.
func SanitizeTerminalText(text string) string {
	if strings.IndexFunc(text, unsafeRune) < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case unicode.IsControl(r):
			b.WriteByte('?')
		case unicode.In(r, unicode.Cf):
			b.WriteRune(FormattingMarker)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormattingMarker stands in for invisible formatting runes.
const FormattingMarker = '�'

func unsafeRune(r rune) bool {
	return unicode.IsControl(r) || unicode.In(r, unicode.Cf)
}
