// Package failure enumerates the ways a linefind invocation can fail.
package failure

import (
	"errors"
	"fmt"
)

// Kind is the closed set of failure categories.
type Kind uint8

const (
	InsufficientArguments Kind = iota + 1
	UnknownFlag
	ConflictingFlags
	FileRead
)

func (k Kind) String() string {
	switch k {
	case InsufficientArguments:
		return "insufficient arguments"
	case UnknownFlag:
		return "unknown flag"
	case ConflictingFlags:
		return "conflicting flags"
	case FileRead:
		return "file read error"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrInsufficientArguments = &Error{Kind: InsufficientArguments}
	ErrUnknownFlag           = &Error{Kind: UnknownFlag}
	ErrConflictingFlags      = &Error{Kind: ConflictingFlags}
	ErrFileRead              = &Error{Kind: FileRead}
)

// ErrInvalidText is the cause of a FileRead failure when the file is not UTF-8.
var ErrInvalidText = errors.New("stream did not contain valid UTF-8")

// Error is a classified failure. Subject names the offending flag, path, or
// usage hint; Err is the underlying cause, if any.
type Error struct {
	Kind    Kind
	Subject string
	Err     error
}

// New returns an *Error of kind k.
func New(k Kind, subject string, cause error) *Error {
	return &Error{Kind: k, Subject: subject, Err: cause}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Subject != "" {
		msg += ": " + e.Subject
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports kind equality, so errors.Is(err, ErrFileRead) matches any
// FileRead failure regardless of subject or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}
