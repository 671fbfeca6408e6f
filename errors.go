package contactsheet

import (
	"errors"
	"fmt"
)

// Kind is a coarse classification of a failed run, used by callers to pick
// a message. The core never recovers from any kind.
type Kind string

const (
	// KindFilesystem: a path is missing, unreadable or unwritable.
	KindFilesystem Kind = "filesystem"

	// KindDecode: file content is not a valid or supported image.
	KindDecode Kind = "decode"

	// KindEncode: a composite could not be built or serialized.
	KindEncode Kind = "encode"

	// KindConfig: margin, columns or resize rate is out of range.
	KindConfig Kind = "config"
)

// Error wraps an underlying error with the operation, kind and path.
type Error struct {
	Op   string
	Kind Kind
	Path string // optional
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// classify wraps err in an *Error unless it already is one, so the kind
// assigned closest to the failure survives propagation through joins.
func classify(op string, kind Kind, path string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Op: op, Kind: kind, Path: path, Err: err}
}
