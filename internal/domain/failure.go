package domain

import "fmt"

// FailureKind classifies why a fetch could not produce a usable response.
type FailureKind string

const (
	FailureConnection FailureKind = "connection"
	FailureTimeout    FailureKind = "timeout"
	FailureAuth       FailureKind = "auth"
	FailureHTTPStatus FailureKind = "http_status"
	FailureParse      FailureKind = "parse"
)

// Failure is the typed error returned by the HTTP client adapter. Every
// fetch failure resolves to an UNKNOWN check result carrying Describe().
type Failure struct {
	Kind FailureKind
	// HTTPStatus is set for FailureHTTPStatus and FailureAuth.
	HTTPStatus int
	Err        error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Kind, f.Err)
	}
	return string(f.Kind)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Describe returns the operator-facing message for the status line.
func (f *Failure) Describe() string {
	switch f.Kind {
	case FailureConnection:
		return "unable to connect to the service"
	case FailureTimeout:
		return "service request timed out"
	case FailureAuth:
		return "authentication failed for the service"
	case FailureHTTPStatus:
		return fmt.Sprintf("HTTP error occurred: %d", f.HTTPStatus)
	case FailureParse:
		return "service returned an unparseable response"
	default:
		return "an unexpected error occurred"
	}
}
