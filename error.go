package locsync

import (
	"errors"
	"fmt"
)

// Kind classifies failures so callers can decide whether to keep going.
type Kind int

const (
	// KindScan: the source tree or a source file could not be read or decoded.
	KindScan Kind = iota + 1
	// KindParse: a target file is not a flat key/value mapping in a known format.
	KindParse
	// KindWrite: a target file could not be opened, read or rewritten.
	KindWrite
	// KindConfig: the configuration is incomplete or invalid.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindScan:
		return "scan"
	case KindParse:
		return "parse"
	case KindWrite:
		return "write"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

var (
	ErrNotDirectory = errors.New("not a directory")
	ErrDecode       = errors.New("content is not valid UTF-8")
	ErrNoTargets    = errors.New("no target files configured")
	ErrNoRoot       = errors.New("root directory is required")

	errNoCaptureGroup = errors.New("pattern must contain a capture group for the key")
)

type Error struct {
	kind Kind
	path string
	err  error
}

func (e *Error) Error() string {
	if e.path == "" {
		return fmt.Sprintf("%s: %v", e.kind, e.err)
	}
	return fmt.Sprintf("%s %s: %v", e.kind, e.path, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Kind() Kind {
	return e.kind
}

// Path is the file or directory the failure relates to; empty for config errors.
func (e *Error) Path() string {
	return e.path
}

// IsKind reports whether err, or anything it wraps, is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.kind == kind
}

func newError(kind Kind, path string, err error) error {
	return &Error{kind: kind, path: path, err: err}
}
