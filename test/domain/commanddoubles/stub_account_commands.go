//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gitbridge/internal/domain/commands"
	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

// StubAddAccountCommand is a stub implementation of commands.AddAccount.
type StubAddAccountCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastName         string
	LastToken        string
}

var _ commands.AddAccount = (*StubAddAccountCommand)(nil)

func (s *StubAddAccountCommand) Execute(name, token string) error {
	s.ExecuteCallCount++
	s.LastName = name
	s.LastToken = token
	return s.ExecuteErr
}

// StubRemoveAccountCommand is a stub implementation of commands.RemoveAccount.
type StubRemoveAccountCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastName         string
}

var _ commands.RemoveAccount = (*StubRemoveAccountCommand)(nil)

func (s *StubRemoveAccountCommand) Execute(name string) error {
	s.ExecuteCallCount++
	s.LastName = name
	return s.ExecuteErr
}

// StubListAccountsCommand is a stub implementation of commands.ListAccounts.
type StubListAccountsCommand struct {
	ExecuteCallCount int
	Accounts         []entities.MaskedAccount
	ExecuteErr       error
}

var _ commands.ListAccounts = (*StubListAccountsCommand)(nil)

func (s *StubListAccountsCommand) Execute() ([]entities.MaskedAccount, error) {
	s.ExecuteCallCount++
	return s.Accounts, s.ExecuteErr
}
