package workouts

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of reasons a workouts file yields no summary.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindDecode
	KindSchema
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindDecode:
		return "decode"
	case KindSchema:
		return "schema"
	default:
		return "unknown"
	}
}

// Error is returned by Aggregate and Loader.Load instead of a summary.
// Row level problems never end up here, they are recorded as RowIssue.
type Error struct {
	Kind   ErrorKind
	Path   string
	Column string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Message()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the short, user facing description of the failure.
func (e *Error) Message() string {
	switch e.Kind {
	case KindNotFound:
		return "file not found"
	case KindDecode:
		return "invalid CSV format"
	case KindSchema:
		return fmt.Sprintf("missing %s column", e.Column)
	default:
		return "workouts error"
	}
}

// IsKind reports whether err is, or wraps, a workouts *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var werr *Error
	if !errors.As(err, &werr) {
		return false
	}
	return werr.Kind == kind
}
