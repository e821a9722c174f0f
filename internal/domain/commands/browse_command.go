package commands

import (
	"context"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gitbridge/internal/infrastructure/repositories"
)

// Browse is the interface for viewing repository contents.
type Browse interface {
	Execute(ctx context.Context, input BrowseInput) (*entities.Contents, error)
}

// BrowseInput points at a directory or file of a repository. An empty Path
// is the repository root.
type BrowseInput struct {
	Reference entities.RepositoryReference
	Account   string
	Path      string
}

// BrowseCommand reads repository contents through the remote API without
// cloning.
type BrowseCommand struct {
	resolver accountResolver
}

// NewBrowseCommand creates a new BrowseCommand.
func NewBrowseCommand(
	settings *entities.Settings,
	accounts repositories.AccountRepository,
	providerRegistry *infraRepos.ProviderRegistry,
) *BrowseCommand {
	return &BrowseCommand{
		resolver: accountResolver{
			settings:         settings,
			accounts:         accounts,
			providerRegistry: providerRegistry,
		},
	}
}

func (it *BrowseCommand) Execute(ctx context.Context, input BrowseInput) (*entities.Contents, error) {
	provider, err := it.resolver.provider(input.Account)
	if err != nil {
		return nil, err
	}

	owner, err := it.resolver.owner(ctx, provider, input.Reference, input.Account)
	if err != nil {
		return nil, err
	}

	contents, err := provider.BrowseContents(ctx, input.Reference.WithOwner(owner), input.Path)
	if err != nil {
		return nil, attributeTo(input.Account, err)
	}
	return contents, nil
}
