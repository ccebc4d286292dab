package app

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Opener shows a directory in the platform's default file manager.
type Opener interface {
	Open(path string) error
	String() string
}

// ErrNoOpener is returned when no file manager command was found.
var ErrNoOpener = errors.New("no file manager command available")

var startCommand = func(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	// reap the child
	go func() { _ = cmd.Wait() }()
	return nil
}

type commandOpener struct {
	argv []string
}

// Open starts the file manager on path without waiting for it.
func (o commandOpener) Open(path string) error {
	if len(o.argv) == 0 {
		return ErrNoOpener
	}
	args := append(append([]string{}, o.argv[1:]...), path)
	cmd := exec.Command(o.argv[0], args...)
	if err := startCommand(cmd); err != nil {
		return fmt.Errorf("failed to start %s: %w", o.argv[0], err)
	}
	return nil
}

func (o commandOpener) String() string {
	if len(o.argv) == 0 {
		return "none"
	}
	return strings.Join(o.argv, " ")
}

// DetectOpener picks the file manager command for the running platform.
func DetectOpener() Opener {
	argv, _ := detectOpenerInternal(runtime.GOOS, exec.LookPath)
	return commandOpener{argv: argv}
}

func detectOpenerInternal(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	var candidates [][]string
	switch strings.ToLower(goos) {
	case "darwin":
		candidates = [][]string{{"open"}}
	case "windows":
		candidates = [][]string{{"explorer.exe"}, {"explorer"}}
	default:
		candidates = [][]string{{"xdg-open"}, {"gio", "open"}}
	}

	for _, candidate := range candidates {
		if path, err := lookPath(candidate[0]); err == nil && path != "" {
			return append([]string{path}, candidate[1:]...), true
		}
	}
	return nil, false
}
