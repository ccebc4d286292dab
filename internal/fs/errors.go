package fs

import (
	"errors"
	iofs "io/fs"
)

// ErrorKind classifies a failed directory listing.
type ErrorKind int

const (
	// KindNone means the error did not come from a listing.
	KindNone ErrorKind = iota
	PermissionDenied
	OtherIOError
)

func (k ErrorKind) String() string {
	switch k {
	case PermissionDenied:
		return "permission denied"
	case OtherIOError:
		return "io error"
	default:
		return "none"
	}
}

// ListError is returned by Lister.List when a directory cannot be listed.
type ListError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *ListError) Error() string {
	if e.Err == nil {
		return "cannot list " + e.Path + ": " + e.Kind.String()
	}
	return "cannot list " + e.Path + ": " + e.Err.Error()
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// ErrBirthTimeUnsupported is reported when the platform or filesystem
// does not record a creation time.
var ErrBirthTimeUnsupported = errors.New("creation time not supported")

func classify(path string, err error) *ListError {
	kind := OtherIOError
	if errors.Is(err, iofs.ErrPermission) {
		kind = PermissionDenied
	}
	return &ListError{Kind: kind, Path: path, Err: err}
}

// KindOf returns the listing error kind carried by err, if any.
func KindOf(err error) ErrorKind {
	var le *ListError
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindNone
}
