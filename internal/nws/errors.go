package nws

import (
	"fmt"
	"net"

	"github.com/pkg/errors"
)

// FailureKind classifies why a fetch produced no usable response.
type FailureKind int

const (
	// KindNetwork covers DNS, connection and transport failures.
	KindNetwork FailureKind = iota
	// KindTimeout is a request that exceeded the client timeout or its context deadline.
	KindTimeout
	// KindStatus is a response with a non-2xx status code.
	KindStatus
	// KindDecode is a 2xx response whose body is not the expected JSON.
	KindDecode
)

func (k FailureKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// FetchError is returned by Client.Get for every failed request.
type FetchError struct {
	Kind       FailureKind
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: %s: %v", e.URL, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf reports the failure kind of err, or false if err is not a *FetchError.
func KindOf(err error) (FailureKind, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}

func classifyTransportError(err error) FailureKind {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return KindTimeout
	}
	return KindNetwork
}
