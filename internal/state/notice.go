package state

import (
	"errors"

	fsutil "github.com/kk-code-lab/dnav/internal/fs"
)

// Notice is a transient error shown over the listing.
type Notice struct {
	Title string
	Body  string
	Kind  fsutil.ErrorKind
}

// NoticeFor converts a failed transition into a Notice.
func NoticeFor(err error) (Notice, bool) {
	if err == nil {
		return Notice{}, false
	}

	var le *fsutil.ListError
	if !errors.As(err, &le) {
		return Notice{
			Title: "Error",
			Body:  "An unexpected error occurred: " + err.Error(),
			Kind:  fsutil.KindNone,
		}, true
	}

	switch le.Kind {
	case fsutil.PermissionDenied:
		return Notice{
			Title: "Access denied",
			Body:  "No permission to read the contents of " + le.Path + ".",
			Kind:  le.Kind,
		}, true
	default:
		cause := "unknown error"
		if le.Err != nil {
			cause = le.Err.Error()
		}
		return Notice{
			Title: "Error",
			Body:  "Cannot open " + le.Path + ": " + cause,
			Kind:  le.Kind,
		}, true
	}
}
