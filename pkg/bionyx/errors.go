package bionyx

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTokenProviderRequired is returned by NewAuth when no TokenProvider is given.
	ErrTokenProviderRequired = errors.New("bionyx: token provider is required")

	// ErrHostRequired is returned by NewAuth when the host is empty.
	ErrHostRequired = errors.New("bionyx: host is required")
)

// ResponseError reports a non-2xx response. It is the only error kind the
// client produces for HTTP status failures; 401, 403, 404 and every other
// status surface through it unchanged.
type ResponseError struct {
	Method     string
	URL        string
	StatusCode int
	Reason     string
	Body       string
}

func (e *ResponseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "bionyx: %s %s: %d", e.Method, e.URL, e.StatusCode)
	if e.Reason != "" {
		b.WriteString(" " + e.Reason)
	}
	if e.Body != "" {
		b.WriteString(": " + e.Body)
	}
	return b.String()
}

// IsStatus reports whether err wraps a ResponseError with the given status code.
func IsStatus(err error, code int) bool {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode == code
	}
	return false
}
