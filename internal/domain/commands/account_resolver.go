package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gitbridge/internal/infrastructure/repositories"
)

// accountResolver turns an account name into a provider authenticated as
// that account.
type accountResolver struct {
	settings         *entities.Settings
	accounts         repositories.AccountRepository
	providerRegistry *infraRepos.ProviderRegistry
}

func (r accountResolver) provider(name string) (repositories.ProviderRepository, error) {
	account, err := r.accounts.Get(name)
	if err != nil {
		return nil, err
	}
	provider, err := r.providerRegistry.Get(r.settings.Provider, account.Token)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Account %q resolved on %s", name, provider.Name())
	return provider, nil
}

// owner returns ref's owner, or the login of the account when ref is bare.
func (r accountResolver) owner(
	ctx context.Context,
	provider repositories.ProviderRepository,
	ref entities.RepositoryReference,
	account string,
) (string, error) {
	if ref.HasOwner() {
		return ref.Owner, nil
	}
	login, err := provider.AuthenticatedUser(ctx)
	if err != nil {
		return "", attributeTo(account, err)
	}
	return login, nil
}

// attributeTo names the account on remote errors that do not know it.
func attributeTo(account string, err error) error {
	var authErr *entities.AuthError
	if errors.As(err, &authErr) && authErr.Account == "" {
		authErr.Account = account
	}
	var rateErr *entities.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Account == "" {
		rateErr.Account = account
	}
	return err
}
