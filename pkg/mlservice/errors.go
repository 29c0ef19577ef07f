package mlservice

import (
	"errors"
	"fmt"
)

// Kind discriminates why a remote call failed. The caller treats all kinds
// the same way, switching to the local fallback, but logs them distinctly.
type Kind int

const (
	// KindTransport means the endpoint could not be reached at all.
	KindTransport Kind = iota + 1
	// KindResponse means the endpoint answered with a non-success status.
	KindResponse
	// KindParse means the endpoint answered with a body that could not be
	// decoded.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindResponse:
		return "response"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error is a classified remote service failure.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("mlservice: %s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func is(err error, k Kind) bool {
	var me *Error
	return errors.As(err, &me) && me.Kind == k
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool { return is(err, KindTransport) }

// IsResponse reports whether err is a non-success HTTP response.
func IsResponse(err error) bool { return is(err, KindResponse) }

// IsParse reports whether err is a malformed response body.
func IsParse(err error) bool { return is(err, KindParse) }
