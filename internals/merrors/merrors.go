// Package merrors holds the error kinds returned while locating and extracting assets
package merrors

import (
	"errors"
	"fmt"
)

// Kind classifies an Error. The set is closed
type Kind int

const (
	// KindEnv means a required environment variable is missing or not valid text
	KindEnv Kind = iota + 1
	// KindIO is any filesystem open, create, read or write failure
	KindIO
	// KindFormat means the archive (or one of its entries) is not valid
	KindFormat
	// KindMalformedName is an archive entry name that can not be used as an output path
	KindMalformedName
)

func (k Kind) String() string {
	switch k {
	case KindEnv:
		return "environment lookup"
	case KindIO:
		return "i/o"
	case KindFormat:
		return "archive format"
	case KindMalformedName:
		return "malformed entry name"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is returned by everything in mcroot, pack and extract
type Error struct {
	Kind Kind
	// Op is a short verb like "open" or "lookup"
	Op string
	// Path is the file, entry name or variable the error is about
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a new *Error
func New(kind Kind, op string, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain or 0
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err contains an *Error of kind k
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}
