package restapi

import (
	"fmt"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrTransport matches every TransportError
	ErrTransport = goerr.New("transport error")
	// ErrAuthExpired matches TransportErrors caused by a rejected token
	ErrAuthExpired = goerr.New("authorization expired")
)

// TransportError reports a call that could not complete or returned non-2xx.
// StatusCode is zero when no response was received.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrTransport, and ErrAuthExpired for 401/403
func (e *TransportError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return true
	case ErrAuthExpired:
		return e.AuthExpired()
	default:
		return false
	}
}

// AuthExpired reports whether the server rejected the bearer token
func (e *TransportError) AuthExpired() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
