//go:build !windows

package app

import (
	"os"
	"syscall"
)

// termSignals end the loop so the terminal is restored before exit.
func termSignals() []os.Signal {
	return []os.Signal{syscall.SIGTERM, syscall.SIGHUP}
}
