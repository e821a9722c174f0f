//go:build integration || unit || test

package applicationdoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/gitbridge/internal/application"
)

// StubHandler is a stub implementation of application.Handler that records
// every request and answers with Outcome.
type StubHandler struct {
	mu       sync.Mutex
	Outcome  application.Outcome
	Requests []application.Request
}

var _ application.Handler = (*StubHandler)(nil)

func (s *StubHandler) Dispatch(_ context.Context, request application.Request) application.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Requests = append(s.Requests, request)
	return s.Outcome
}

// LastRequest returns the most recent request, or the zero value when none
// was dispatched.
func (s *StubHandler) LastRequest() application.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Requests) == 0 {
		return application.Request{}
	}
	return s.Requests[len(s.Requests)-1]
}

// CallCount returns how many requests were dispatched.
func (s *StubHandler) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Requests)
}
