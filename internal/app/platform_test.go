package app

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"
)

func fakeLookPath(available map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if path, ok := available[name]; ok {
			return path, nil
		}
		return "", exec.ErrNotFound
	}
}

func TestDetectOpenerInternal(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		available map[string]string
		want      []string
		wantOK    bool
	}{
		{
			name:      "darwin open",
			goos:      "darwin",
			available: map[string]string{"open": "/usr/bin/open"},
			want:      []string{"/usr/bin/open"},
			wantOK:    true,
		},
		{
			name:      "windows explorer",
			goos:      "windows",
			available: map[string]string{"explorer.exe": `C:\Windows\explorer.exe`},
			want:      []string{`C:\Windows\explorer.exe`},
			wantOK:    true,
		},
		{
			name:      "linux prefers xdg-open",
			goos:      "linux",
			available: map[string]string{"xdg-open": "/usr/bin/xdg-open", "gio": "/usr/bin/gio"},
			want:      []string{"/usr/bin/xdg-open"},
			wantOK:    true,
		},
		{
			name:      "linux falls back to gio open",
			goos:      "linux",
			available: map[string]string{"gio": "/usr/bin/gio"},
			want:      []string{"/usr/bin/gio", "open"},
			wantOK:    true,
		},
		{
			name:      "nothing available",
			goos:      "freebsd",
			available: map[string]string{"open": "/usr/bin/open"},
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := detectOpenerInternal(tt.goos, fakeLookPath(tt.available))
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCommandOpenerStartsWithPath(t *testing.T) {
	var started *exec.Cmd
	orig := startCommand
	startCommand = func(cmd *exec.Cmd) error {
		started = cmd
		return nil
	}
	t.Cleanup(func() { startCommand = orig })

	opener := commandOpener{argv: []string{"/usr/bin/gio", "open"}}
	if err := opener.Open("/home/ann"); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if started == nil {
		t.Fatal("expected command to be started")
	}
	want := []string{"/usr/bin/gio", "open", "/home/ann"}
	if !reflect.DeepEqual(started.Args, want) {
		t.Fatalf("expected args %v, got %v", want, started.Args)
	}
	if opener.String() != "/usr/bin/gio open" {
		t.Fatalf("unexpected String(): %q", opener.String())
	}
}

func TestCommandOpenerReportsStartFailure(t *testing.T) {
	orig := startCommand
	boom := errors.New("boom")
	startCommand = func(*exec.Cmd) error { return boom }
	t.Cleanup(func() { startCommand = orig })

	err := commandOpener{argv: []string{"xdg-open"}}.Open("/tmp")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped start error, got %v", err)
	}
}

func TestCommandOpenerWithoutCommand(t *testing.T) {
	opener := commandOpener{}
	if err := opener.Open("/tmp"); !errors.Is(err, ErrNoOpener) {
		t.Fatalf("expected ErrNoOpener, got %v", err)
	}
	if opener.String() != "none" {
		t.Fatalf("unexpected String(): %q", opener.String())
	}
}
