package remote

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	// KindRemote is a non-2xx answer from the vendor.
	KindRemote Kind = "remote"
	// KindTransport means the request left but no response came back.
	KindTransport Kind = "transport"
	// KindRequest means the request could not be built.
	KindRequest Kind = "request"
	// KindUnauthenticated means credentials could not be obtained and the call was not issued.
	KindUnauthenticated Kind = "unauthenticated"
)

// Error describes a failed call to a downstream service.
type Error struct {
	Service    string
	Kind       Kind
	StatusCode int
	Body       string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRemote:
		return fmt.Sprintf("%s responded %d: %s", e.Service, e.StatusCode, e.Message)
	case KindUnauthenticated, KindTransport, KindRequest:
		if e.Err != nil {
			return fmt.Sprintf("%s %s error: %s: %v", e.Service, e.Kind, e.Message, e.Err)
		}
	}

	return fmt.Sprintf("%s %s error: %s", e.Service, e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the remote error in err's chain, or an empty kind.
func KindOf(err error) Kind {
	var remoteErr *Error
	if errors.As(err, &remoteErr) {
		return remoteErr.Kind
	}

	return ""
}

func StatusOf(err error) int {
	var remoteErr *Error
	if errors.As(err, &remoteErr) {
		return remoteErr.StatusCode
	}

	return 0
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindRemote && StatusOf(err) == http.StatusNotFound
}
