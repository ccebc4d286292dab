package render

import "strings"

var footerHelpSegments = []string{
	"↓/j: next",
	"↑/k: previous",
	"↵/→/l: enter",
	"⌫/←/h: back",
	"r: refresh",
	"u: open in file manager",
	"q/Esc: quit",
}

// buildFooterHelpText returns the key hint string with leading/trailing padding.
func buildFooterHelpText() string {
	return " " + strings.Join(footerHelpSegments, "  ") + " "
}
