package hackernews

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports an identifier, username or count that failed
	// validation. No request is made when it is returned.
	ErrInvalidArgument = errors.New("hackernews: invalid argument")

	// ErrNotFound reports a JSON null body, which the API returns for unknown items and users.
	ErrNotFound = errors.New("hackernews: not found")
)

// FailureKind classifies a transport failure.
type FailureKind int

const (
	FailureNetwork FailureKind = iota + 1 // connect, timeout, read
	FailureHTTP                           // non-2xx status
	FailureParse                          // body is not the expected JSON
)

func (k FailureKind) String() string {
	switch k {
	case FailureNetwork:
		return "network"
	case FailureHTTP:
		return "http"
	case FailureParse:
		return "parse"
	default:
		return "unknown"
	}
}

// TransportError is returned by a Transport when a GET fails.
type TransportError struct {
	Kind       FailureKind
	URL        string
	StatusCode int // set for FailureHTTP
	Err        error
}

func (e *TransportError) Error() string {
	if e.Kind == FailureHTTP {
		return fmt.Sprintf("%s failure: GET %s: status %d", e.Kind, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s failure: GET %s: %v", e.Kind, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// FetchError wraps any failure after validation with the operation and the requested URL.
type FetchError struct {
	Op  string // item, user, listing, maxitem
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("hackernews: fetch %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status carried by err, or 0 if err is not an HTTP failure.
func StatusCode(err error) int {
	var te *TransportError
	if errors.As(err, &te) && te.Kind == FailureHTTP {
		return te.StatusCode
	}
	return 0
}
