//go:build integration || unit || test

package controllerdoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gitbridge/internal/infrastructure/controllers"
)

// StubPrompter is a stub implementation of controllers.Prompter.
type StubPrompter struct {
	Answer       bool
	Err          error
	Questions    []string
	ConfirmCalls int
}

var _ controllers.Prompter = (*StubPrompter)(nil)

func (s *StubPrompter) Confirm(question string) (bool, error) {
	s.ConfirmCalls++
	s.Questions = append(s.Questions, question)
	return s.Answer, s.Err
}
