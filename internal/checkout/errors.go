package checkout

import "fmt"

// ValidationError reports caller input that violates a constraint. It is
// surfaced as a client error and never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UpstreamError reports a rejection or failure from the payment provider.
// The provider's message is passed through untouched.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "provider error: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
