package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

// RemoveAccount is the interface for forgetting an account.
type RemoveAccount interface {
	Execute(name string) error
}

// RemoveAccountCommand deletes a stored account. Remote repositories are not
// touched.
type RemoveAccountCommand struct {
	accounts repositories.AccountRepository
}

// NewRemoveAccountCommand creates a new RemoveAccountCommand.
func NewRemoveAccountCommand(accounts repositories.AccountRepository) *RemoveAccountCommand {
	return &RemoveAccountCommand{accounts: accounts}
}

func (it *RemoveAccountCommand) Execute(name string) error {
	if err := it.accounts.Remove(name); err != nil {
		return err
	}
	logger.Infof("Account %q removed", name)
	return nil
}
