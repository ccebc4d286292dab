package textutil

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth reports the printable width of text accounting for wide runes.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Wrap breaks text into lines no wider than width columns. Words longer than
// a line are split.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.Fields(text) {
		wordWidth := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+wordWidth > width {
			flush()
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		for wordWidth > width-lineWidth {
			head := runewidth.Truncate(word, width-lineWidth, "")
			if head == "" {
				// a single rune wider than the line
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			line.WriteString(head)
			flush()
			word = word[len(head):]
			wordWidth = runewidth.StringWidth(word)
		}
		line.WriteString(word)
		lineWidth += wordWidth
	}
	if lineWidth > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}
