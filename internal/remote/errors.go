package remote

import (
	"fmt"
	"strings"
)

// ErrTransport indicates the HTTP exchange itself failed: connection
// refused, timeout, or a non-200 status.
type ErrTransport struct {
	Err error
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("study service unreachable: %v", e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrMalformedResponse indicates the service answered with a payload
// that could not be decoded or that failed schema validation.
type ErrMalformedResponse struct {
	Body []byte
	Err  error
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed study service response: %v", e.Err)
}

func (e *ErrMalformedResponse) Unwrap() error { return e.Err }

// ErrRemote carries errors the service itself reported through the
// GraphQL errors array, e.g. an unknown learner id.
type ErrRemote struct {
	Messages []string
}

func (e *ErrRemote) Error() string {
	return fmt.Sprintf("study service error: %s", strings.Join(e.Messages, "; "))
}
