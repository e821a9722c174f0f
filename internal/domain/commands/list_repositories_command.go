package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gitbridge/internal/infrastructure/repositories"
)

// ListRepositories is the interface for listing repositories per account.
type ListRepositories interface {
	Execute(ctx context.Context, account string) ([]AccountListing, error)
}

// AccountListing is the repositories of one account, or the reason they
// could not be listed.
type AccountListing struct {
	Account      string
	Repositories []entities.RemoteRepository
	Err          error
}

// ListRepositoriesCommand lists repositories of one account or of all of
// them. A failing account does not hide the listings of the others.
type ListRepositoriesCommand struct {
	resolver accountResolver
}

// NewListRepositoriesCommand creates a new ListRepositoriesCommand.
func NewListRepositoriesCommand(
	settings *entities.Settings,
	accounts repositories.AccountRepository,
	providerRegistry *infraRepos.ProviderRegistry,
) *ListRepositoriesCommand {
	return &ListRepositoriesCommand{
		resolver: accountResolver{
			settings:         settings,
			accounts:         accounts,
			providerRegistry: providerRegistry,
		},
	}
}

// Execute lists the given account, or every account when account is empty.
// The returned error covers the account store only; remote failures are
// reported per listing.
func (it *ListRepositoriesCommand) Execute(ctx context.Context, account string) ([]AccountListing, error) {
	var names []string
	if account != "" {
		if _, err := it.resolver.accounts.Get(account); err != nil {
			return nil, err
		}
		names = []string{account}
	} else {
		stored, err := it.resolver.accounts.List()
		if err != nil {
			return nil, err
		}
		for _, a := range stored {
			names = append(names, a.Name)
		}
	}

	listings := make([]AccountListing, 0, len(names))
	for _, name := range names {
		listings = append(listings, it.listAccount(ctx, name))
	}
	return listings, nil
}

func (it *ListRepositoriesCommand) listAccount(ctx context.Context, name string) AccountListing {
	provider, err := it.resolver.provider(name)
	if err != nil {
		return AccountListing{Account: name, Err: err}
	}

	logger.Debugf("Listing repositories of account %q", name)
	repos, err := provider.ListRepositories(ctx)
	if err != nil {
		logger.Warnf("Failed to list repositories of account %q: %v", name, err)
		return AccountListing{Account: name, Err: attributeTo(name, err)}
	}

	logger.Debugf("Account %q has %d repositories", name, len(repos))
	return AccountListing{Account: name, Repositories: repos}
}
