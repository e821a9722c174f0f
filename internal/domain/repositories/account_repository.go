package repositories

import "github.com/rios0rios0/gitbridge/internal/domain/entities"

// AccountRepository stores account credentials. Implementations decide where
// tokens live (a JSON file, the OS keychain); callers never depend on it.
type AccountRepository interface {
	// Save adds a new account. It fails with *entities.DuplicateAccountError
	// when the name is taken, leaving the store unchanged.
	Save(account entities.Account) error

	// Get returns the account with its resolved token, or *entities.NotFoundError.
	Get(name string) (entities.Account, error)

	// Remove deletes an account, or fails with *entities.NotFoundError leaving
	// the store unchanged.
	Remove(name string) error

	// List returns every account sorted by name with masked tokens.
	List() ([]entities.MaskedAccount, error)
}
