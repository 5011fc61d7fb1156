package errs

import "errors"

type NetworkErrorKind string

const (
	NetworkTimeout     NetworkErrorKind = "timeout"
	NetworkUnreachable NetworkErrorKind = "unreachable"
	NetworkServerError NetworkErrorKind = "server_error"
)

// NetworkError is a transport-level failure against a collaborator API. The
// three kinds surface as three different user-facing messages; whether
// compensation runs depends on which saga step was in flight, which the
// orchestrator decides.
type NetworkError struct {
	Kind NetworkErrorKind
	Op   string
	Err  error
}

func (e *NetworkError) Error() string {
	msg := e.Op + ": " + string(e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Message() string {
	switch e.Kind {
	case NetworkTimeout:
		return "The request timed out. Please check your connection and try again."
	case NetworkUnreachable:
		return "No response from the server. Please try again in a moment."
	default:
		return "The server reported an error. Please try again later."
	}
}

func AsNetworkError(err error) (*NetworkError, bool) {
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne, true
	}
	return nil, false
}
