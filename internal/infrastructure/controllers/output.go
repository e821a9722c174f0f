package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitbridge/internal/application"
)

// report prints an outcome and converts it into the command's error. Lines
// and successful messages go to stdout, failure messages to stderr.
func report(cmd *cobra.Command, outcome application.Outcome) error {
	out := cmd.OutOrStdout()
	for _, line := range outcome.Lines {
		_, _ = fmt.Fprintln(out, line)
	}

	switch outcome.Status {
	case application.StatusSuccess, application.StatusCancelled:
		if outcome.Message != "" {
			_, _ = fmt.Fprintln(out, outcome.Message)
		}
	case application.StatusPartial:
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "PARTIAL: "+outcome.Message)
	default:
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error: "+outcome.Message)
	}
	return outcome.AsError()
}
