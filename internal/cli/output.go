package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrymomot/formulate/pkg/validator"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the form is invalid
	ExitCommandError = 2 // bad input, unknown rule, unreachable store
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

func (e *ExitError) Unwrap() error {
	return e.Err
}

func commandError(message string, err error) *ExitError {
	return &ExitError{Code: ExitCommandError, Message: message, Err: err}
}

// ExitCode extracts the exit code from err. Validation errors mean an
// invalid form; any other plain error is a command error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if validator.IsValidationError(err) {
		return ExitFailure
	}
	return ExitCommandError
}

// Response is the JSON envelope of every command.
type Response struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// output writes either JSON envelopes or plain text.
type output struct {
	format  string
	w       io.Writer
	verbose bool
	errW    io.Writer
}

// result prints data as JSON, or calls text for the human format.
func (o *output) result(status string, data any, text func(w io.Writer)) error {
	if o.format == formatJSON {
		return json.NewEncoder(o.w).Encode(Response{Status: status, Data: data})
	}
	text(o.w)
	return nil
}

func (o *output) debugf(format string, args ...any) {
	if o.verbose {
		fmt.Fprintf(o.errW, format+"\n", args...)
	}
}
