package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	for _, constructor := range []interface{}{
		NewAddAccountCommand,
		NewRemoveAccountCommand,
		NewListAccountsCommand,
		NewListRepositoriesCommand,
		NewCopyCommand,
		NewDeleteCommand,
		NewMoveCommand,
		NewBrowseCommand,
	} {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	for _, binding := range []interface{}{
		func(impl *AddAccountCommand) AddAccount { return impl },
		func(impl *RemoveAccountCommand) RemoveAccount { return impl },
		func(impl *ListAccountsCommand) ListAccounts { return impl },
		func(impl *ListRepositoriesCommand) ListRepositories { return impl },
		func(impl *CopyCommand) Copy { return impl },
		func(impl *DeleteCommand) Delete { return impl },
		func(impl *MoveCommand) Move { return impl },
		func(impl *BrowseCommand) Browse { return impl },
	} {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
