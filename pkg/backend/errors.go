package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTransport = errors.New("backend unreachable")
	ErrDecode    = errors.New("unexpected backend response")
)

// StatusError is returned for any non-2xx response. Message is the server's
// "message" field when the body carried one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("backend returned %d %s", e.Code, http.StatusText(e.Code))
}

// StatusCode extracts the HTTP status from err, or 0 when err is not a
// StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
