package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aomkin/config"
	"github.com/katalvlaran/aomkin/sweep"
)

// Exit codes.
const (
	ExitSuccess = 0 // run finished, possibly with invalid points
	ExitFailure = 1 // run or I/O failure
	ExitUsage   = 2 // bad flags, arguments or configuration
)

// ExitError carries the process exit code of a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

func usageError(message string, err error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: message, Err: err}
}

func failure(message string, err error) *ExitError {
	return &ExitError{Code: ExitFailure, Message: message, Err: err}
}

// ExitCode maps err to a process exit code. Configuration errors that were
// not wrapped in an ExitError still count as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	if errors.Is(err, config.ErrValidation) || errors.Is(err, sweep.ErrInvalidConfig) {
		return ExitUsage
	}

	return ExitFailure
}
