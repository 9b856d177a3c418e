package kanboard

import (
	"errors"
	"fmt"
)

// Kind classifies a client error so callers can branch on the failure class
// without inspecting message text.
type Kind int

const (
	// KindConfiguration means the local settings are invalid (bad URL,
	// missing token, unparseable numeric option). Never retried.
	KindConfiguration Kind = iota
	// KindAuthentication means Kanboard rejected the credentials. Fatal for
	// the session, never retried.
	KindAuthentication
	// KindConnection means the endpoint could not be reached or timed out.
	// This is the only retryable kind.
	KindConnection
	// KindAPI means Kanboard returned a well-formed JSON-RPC error for the
	// requested method. The remote code and message are preserved. Never
	// retried.
	KindAPI
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindAuthentication:
		return "authentication"
	case KindConnection:
		return "connection"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Error is the shared error family for every failure the client surfaces.
// All errors returned by Call, TestConnection and ServerInfo are of this
// type; anything else escaping a tool handler is a defect, not a tool error.
type Error struct {
	Kind    Kind
	Message string
	Code    int // JSON-RPC error code, set when Kind is KindAPI
	Err     error
}

func (e *Error) Error() string {
	if e.Kind == KindAPI && e.Code != 0 {
		return fmt.Sprintf("kanboard: %s error %d: %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("kanboard: %s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure is transport-level and worth another
// attempt. Protocol, authentication and configuration failures are final.
func (e *Error) Retryable() bool {
	return e.Kind == KindConnection
}

// IsKind reports whether err belongs to the client error family with the
// given kind.
func IsKind(err error, kind Kind) bool {
	var kerr *Error
	return errors.As(err, &kerr) && kerr.Kind == kind
}

func configErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

func authErrorf(format string, args ...any) *Error {
	return &Error{Kind: KindAuthentication, Message: fmt.Sprintf(format, args...)}
}

func connError(err error, format string, args ...any) *Error {
	return &Error{Kind: KindConnection, Message: fmt.Sprintf(format, args...), Err: err}
}

func apiError(code int, message string) *Error {
	return &Error{Kind: KindAPI, Message: message, Code: code}
}
