package content

import (
	"errors"
	"fmt"
)

// NetworkErrorKind classifies why a remote fetch failed.
type NetworkErrorKind string

// Remote failure kinds.
const (
	KindTransport NetworkErrorKind = "transport"
	KindTimeout   NetworkErrorKind = "timeout"
	KindCORS      NetworkErrorKind = "cors"
	KindStatus    NetworkErrorKind = "status"
	KindDecode    NetworkErrorKind = "decode"
	KindEmpty     NetworkErrorKind = "empty"
)

// ErrEmptyResponse is wrapped by NetworkError values of KindEmpty.
var ErrEmptyResponse = errors.New("remote source returned no items")

// NetworkError describes a failed remote fetch.
type NetworkError struct {
	Kind       NetworkErrorKind
	StatusCode int // set for KindStatus
	Err        error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("remote content %s error (HTTP %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("remote content %s error: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a NetworkError of the given kind.
func NewNetworkError(kind NetworkErrorKind, err error) *NetworkError {
	return &NetworkError{Kind: kind, Err: err}
}

// KindOf returns the kind of the NetworkError in err's chain. Errors that are
// not NetworkErrors count as transport failures.
func KindOf(err error) NetworkErrorKind {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Kind
	}
	return KindTransport
}
