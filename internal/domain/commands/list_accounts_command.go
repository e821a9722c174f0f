package commands

import (
	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

// ListAccounts is the interface for listing stored accounts.
type ListAccounts interface {
	Execute() ([]entities.MaskedAccount, error)
}

// ListAccountsCommand returns every account with its token masked.
type ListAccountsCommand struct {
	accounts repositories.AccountRepository
}

// NewListAccountsCommand creates a new ListAccountsCommand.
func NewListAccountsCommand(accounts repositories.AccountRepository) *ListAccountsCommand {
	return &ListAccountsCommand{accounts: accounts}
}

func (it *ListAccountsCommand) Execute() ([]entities.MaskedAccount, error) {
	return it.accounts.List()
}
