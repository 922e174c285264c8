// Package errors provides typed errors with exit codes for skillseed.
//
// Every fatal failure of a seed run is a *SeedError carrying the process exit
// code, so main can do:
//
//	if err := cli.Execute(); err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
//
// Errors that are not SeedErrors map to ExitGeneralError.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes for skillseed
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitInputError    = 2
	ExitParseError    = 3
	ExitInvalidRecord = 4
	ExitOutputError   = 5
	ExitConfigError   = 6
)

// SeedError is the base error type for skillseed
type SeedError struct {
	Code    int
	Message string
	Cause   error
}

func (e *SeedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SeedError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *SeedError) ExitCode() int {
	return e.Code
}

// New creates a new SeedError
func New(code int, message string) *SeedError {
	return &SeedError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SeedError
func Wrap(code int, message string, cause error) *SeedError {
	return &SeedError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// InputUnreadable returns an error for a missing or unreadable input file
func InputUnreadable(path string, cause error) *SeedError {
	return Wrap(ExitInputError, fmt.Sprintf("cannot read input file %s", path), cause)
}

// MalformedJSON returns an error for an input file that is not valid JSON
func MalformedJSON(path string, cause error) *SeedError {
	return Wrap(ExitParseError, fmt.Sprintf("malformed JSON in %s", path), cause)
}

// MissingField returns an error for a skill record without a required field
func MissingField(path string, index int, field string) *SeedError {
	return New(ExitInvalidRecord, fmt.Sprintf("%s: skill #%d is missing required field %q", path, index, field))
}

// InvalidField returns an error for a skill record whose field has the wrong shape
func InvalidField(path string, index int, field, reason string) *SeedError {
	return New(ExitInvalidRecord, fmt.Sprintf("%s: skill #%d has invalid field %q: %s", path, index, field, reason))
}

// OutputFailed returns an error for a failed output write
func OutputFailed(path string, cause error) *SeedError {
	return Wrap(ExitOutputError, fmt.Sprintf("cannot write output %s", path), cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *SeedError {
	return Wrap(ExitConfigError, message, cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var seedErr *SeedError
	if errors.As(err, &seedErr) {
		return seedErr.ExitCode()
	}
	return ExitGeneralError
}

