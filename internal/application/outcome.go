package application

import "fmt"

// Status classifies an Outcome.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	// StatusPartial is a move whose copy succeeded but whose delete failed.
	StatusPartial
	// StatusCancelled is a destructive request the user declined.
	StatusCancelled
)

// Exit codes used by the command-line surface.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitPartial = 2
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusPartial:
		return "partial"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome is the user-facing result of a Request. Message and Lines are
// ready to display and never contain credentials.
type Outcome struct {
	Status  Status
	Message string
	Lines   []string
	// NeedsConfirmation is set when the request was refused only because it
	// was not confirmed; resubmitting with Confirmed succeeds past that check.
	NeedsConfirmation bool
}

// Succeeded reports whether the request fully succeeded.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSuccess
}

// ExitCode maps the outcome to a process exit code. A cancelled request is
// not an error.
func (o Outcome) ExitCode() int {
	switch o.Status {
	case StatusSuccess, StatusCancelled:
		return ExitSuccess
	case StatusPartial:
		return ExitPartial
	default:
		return ExitFailure
	}
}

// Cancelled is the outcome of a declined confirmation.
func Cancelled(what string) Outcome {
	return Outcome{Status: StatusCancelled, Message: what + " cancelled"}
}

// ExitError carries a non-zero exit code out of a cobra command.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// AsError returns nil for outcomes that exit 0 and an *ExitError otherwise.
func (o Outcome) AsError() error {
	code := o.ExitCode()
	if code == ExitSuccess {
		return nil
	}
	return &ExitError{Code: code, Message: o.Message}
}
