//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"sort"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

// InMemoryAccountRepository implements repositories.AccountRepository over a map.
type InMemoryAccountRepository struct {
	Tokens  map[string]string
	ListErr error
}

var _ repositories.AccountRepository = (*InMemoryAccountRepository)(nil)

// NewInMemoryAccountRepository creates a store holding the given name/token pairs.
func NewInMemoryAccountRepository(accounts ...entities.Account) *InMemoryAccountRepository {
	repo := &InMemoryAccountRepository{Tokens: map[string]string{}}
	for _, account := range accounts {
		repo.Tokens[account.Name] = account.Token
	}
	return repo
}

func (r *InMemoryAccountRepository) Save(account entities.Account) error {
	if _, exists := r.Tokens[account.Name]; exists {
		return &entities.DuplicateAccountError{Name: account.Name}
	}
	r.Tokens[account.Name] = account.Token
	return nil
}

func (r *InMemoryAccountRepository) Get(name string) (entities.Account, error) {
	token, exists := r.Tokens[name]
	if !exists {
		return entities.Account{}, &entities.NotFoundError{Kind: "account", Name: name}
	}
	return entities.Account{Name: name, Token: token}, nil
}

func (r *InMemoryAccountRepository) Remove(name string) error {
	if _, exists := r.Tokens[name]; !exists {
		return &entities.NotFoundError{Kind: "account", Name: name}
	}
	delete(r.Tokens, name)
	return nil
}

func (r *InMemoryAccountRepository) List() ([]entities.MaskedAccount, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	names := make([]string, 0, len(r.Tokens))
	for name := range r.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	masked := make([]entities.MaskedAccount, 0, len(names))
	for _, name := range names {
		masked = append(masked, entities.Account{Name: name, Token: r.Tokens[name]}.Masked())
	}
	return masked, nil
}
