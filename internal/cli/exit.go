package cli

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/config"
	"github.com/katalvlaran/antcolony/tsplib"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Run failed (degenerate instance, cancelled, storage error)
	ExitCommandError = 2 // Bad input (flags, config, problem file, solver options)
)

// ExitError carries the process exit code for an error.
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

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// ExitCode maps err to a process exit code. An explicit ExitError wins;
// otherwise input errors map to ExitCommandError and the rest to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	switch {
	case errors.Is(err, aco.ErrInvalidConfiguration),
		errors.Is(err, config.ErrInvalid),
		errors.Is(err, tsplib.ErrSyntax),
		errors.Is(err, tsplib.ErrUnsupported),
		errors.Is(err, tsplib.ErrDimension):
		return ExitCommandError
	}

	return ExitFailure
}
