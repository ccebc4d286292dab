package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
)

func main() {
	// Set UTF-8 as fallback encoding so non-ASCII names display correctly
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCommand().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError reports a fatal error once the terminal has been restored.
func printError(w io.Writer, err error) {
	_, _ = color.New(color.FgRed, color.Bold).Fprint(w, "Error:")
	_, _ = fmt.Fprintf(w, " %v\n", err)
}
