// Package parsererror defines the typed errors raised while turning a
// transcript into an expense.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrEmptyTranscript is the sentinel wrapped by EmptyInputError.
var ErrEmptyTranscript = errors.New("empty or invalid transcript")

// EmptyInputError is returned when the transcript is empty or whitespace-only.
// It is the only condition that reaches the caller as a failed extraction.
type EmptyInputError struct {
	Transcript string
}

func (e *EmptyInputError) Error() string {
	return "Empty or invalid transcript"
}

func (e *EmptyInputError) Unwrap() error {
	return ErrEmptyTranscript
}

// RemoteUnavailableError marks a remote extraction attempt that could not
// produce a usable expense: no client configured, transport failure, timeout,
// an explicit failure answer or a response that failed validation.
type RemoteUnavailableError struct {
	Strategy string
	Reason   string
	Err      error
}

func (e *RemoteUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s extraction unavailable: %s: %v", e.Strategy, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s extraction unavailable: %s", e.Strategy, e.Reason)
}

func (e *RemoteUnavailableError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to decode a field of a remote response.
type ParseError struct {
	Source string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Source, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents an expense or taxonomy that breaks an invariant.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsEmptyInput reports whether err is, or wraps, an empty-transcript error.
func IsEmptyInput(err error) bool {
	return errors.Is(err, ErrEmptyTranscript)
}


