package healthmetrics

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindSyntax
	KindNotACollection
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindSyntax:
		return "syntax"
	case KindNotACollection:
		return "not_a_collection"
	default:
		return "unknown"
	}
}

// Error means no usable metrics count could be produced. A document
// without metrics is not an error, see CountMetrics.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
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

func (e *Error) Message() string {
	switch e.Kind {
	case KindNotFound:
		return "file not found"
	case KindSyntax:
		return "invalid document format"
	case KindNotACollection:
		return "metrics is not an array or lacks a length"
	default:
		return "health metrics error"
	}
}

func IsKind(err error, kind ErrorKind) bool {
	var merr *Error
	if !errors.As(err, &merr) {
		return false
	}
	return merr.Kind == kind
}
