//go:build windows

package app

import "os"

func termSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
