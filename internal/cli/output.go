package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"guestpass/internal/errors"
	"guestpass/internal/guestclient"
)

// Exit codes.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // request failed or access was refused
	ExitCommandError = 2 // bad arguments or local state
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

func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps an error returned by a command to a process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// ErrorMessage renders err for stderr, preferring the server's message.
func ErrorMessage(err error) string {
	var apiErr *guestclient.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Error [%s]: %s", apiErr.Code, apiErr.Message)
	}

	return "Error: " + err.Error()
}

// printer writes either key: value lines or the raw result as JSON.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format}
}

func (p *printer) json() bool {
	return p.format == "json"
}

func (p *printer) encode(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")

	return errors.Wrap(enc.Encode(v), "encode output")
}

// field skips empty values.
func (p *printer) field(key, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(p.w, "%s: %s\n", key, value)
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}
