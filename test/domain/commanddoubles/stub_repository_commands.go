//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitbridge/internal/domain/commands"
	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

// StubListRepositoriesCommand is a stub implementation of commands.ListRepositories.
type StubListRepositoriesCommand struct {
	ExecuteCallCount int
	Listings         []commands.AccountListing
	ExecuteErr       error
	LastAccount      string
}

var _ commands.ListRepositories = (*StubListRepositoriesCommand)(nil)

func (s *StubListRepositoriesCommand) Execute(
	_ context.Context,
	account string,
) ([]commands.AccountListing, error) {
	s.ExecuteCallCount++
	s.LastAccount = account
	return s.Listings, s.ExecuteErr
}

// StubCopyCommand is a stub implementation of commands.Copy.
type StubCopyCommand struct {
	ExecuteCallCount int
	Result           entities.OperationResult
	LastInput        commands.CopyInput
}

var _ commands.Copy = (*StubCopyCommand)(nil)

func (s *StubCopyCommand) Execute(_ context.Context, input commands.CopyInput) entities.OperationResult {
	s.ExecuteCallCount++
	s.LastInput = input
	return s.Result
}

// StubDeleteCommand is a stub implementation of commands.Delete.
type StubDeleteCommand struct {
	ExecuteCallCount int
	Result           entities.OperationResult
	LastInput        commands.DeleteInput
}

var _ commands.Delete = (*StubDeleteCommand)(nil)

func (s *StubDeleteCommand) Execute(_ context.Context, input commands.DeleteInput) entities.OperationResult {
	s.ExecuteCallCount++
	s.LastInput = input
	return s.Result
}

// StubMoveCommand is a stub implementation of commands.Move.
type StubMoveCommand struct {
	ExecuteCallCount int
	Result           entities.OperationResult
	LastInput        commands.CopyInput
}

var _ commands.Move = (*StubMoveCommand)(nil)

func (s *StubMoveCommand) Execute(_ context.Context, input commands.CopyInput) entities.OperationResult {
	s.ExecuteCallCount++
	s.LastInput = input
	return s.Result
}

// StubBrowseCommand is a stub implementation of commands.Browse.
type StubBrowseCommand struct {
	ExecuteCallCount int
	Contents         *entities.Contents
	ExecuteErr       error
	LastInput        commands.BrowseInput
}

var _ commands.Browse = (*StubBrowseCommand)(nil)

func (s *StubBrowseCommand) Execute(
	_ context.Context,
	input commands.BrowseInput,
) (*entities.Contents, error) {
	s.ExecuteCallCount++
	s.LastInput = input
	return s.Contents, s.ExecuteErr
}
