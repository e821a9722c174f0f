package commands

import (
	"errors"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

// ErrEmptyAccountField is returned when an account name or token is blank.
var ErrEmptyAccountField = errors.New("account name and token must not be empty")

// AddAccount is the interface for registering a new account.
type AddAccount interface {
	Execute(name, token string) error
}

// AddAccountCommand stores a new named token.
type AddAccountCommand struct {
	accounts repositories.AccountRepository
}

// NewAddAccountCommand creates a new AddAccountCommand.
func NewAddAccountCommand(accounts repositories.AccountRepository) *AddAccountCommand {
	return &AddAccountCommand{accounts: accounts}
}

// Execute fails with *entities.DuplicateAccountError when name is taken.
func (it *AddAccountCommand) Execute(name, token string) error {
	name = strings.TrimSpace(name)
	token = strings.TrimSpace(token)
	if name == "" || token == "" {
		return ErrEmptyAccountField
	}

	if err := it.accounts.Save(entities.Account{Name: name, Token: token}); err != nil {
		return err
	}

	logger.Infof("Account %q added (token %s)", name, entities.MaskToken(token))
	return nil
}
