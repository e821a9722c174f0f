package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gitbridge/internal/infrastructure/repositories"
)

// Delete is the interface for deleting a repository.
type Delete interface {
	Execute(ctx context.Context, input DeleteInput) entities.OperationResult
}

// DeleteInput names the repository and the account owning it. Nothing is
// deleted unless Confirmed is set.
type DeleteInput struct {
	Reference entities.RepositoryReference
	Account   string
	Confirmed bool
}

// DeleteCommand irreversibly deletes a remote repository.
type DeleteCommand struct {
	resolver accountResolver
}

// NewDeleteCommand creates a new DeleteCommand.
func NewDeleteCommand(
	settings *entities.Settings,
	accounts repositories.AccountRepository,
	providerRegistry *infraRepos.ProviderRegistry,
) *DeleteCommand {
	return &DeleteCommand{
		resolver: accountResolver{
			settings:         settings,
			accounts:         accounts,
			providerRegistry: providerRegistry,
		},
	}
}

func (it *DeleteCommand) Execute(ctx context.Context, input DeleteInput) entities.OperationResult {
	if !input.Confirmed {
		return entities.Failed(
			StepConfirmation,
			&entities.ConfirmationRequiredError{Target: input.Reference.FullName()},
		)
	}

	var provider repositories.ProviderRepository
	target := input.Reference
	runner := &stepRunner{}

	failedStep, err := runner.run(ctx, []step{
		{name: StepPreparation, run: func(ctx context.Context) error {
			var err error
			if provider, err = it.resolver.provider(input.Account); err != nil {
				return err
			}
			owner, err := it.resolver.owner(ctx, provider, input.Reference, input.Account)
			target = input.Reference.WithOwner(owner)
			return err
		}},
		{name: StepDelete, run: func(ctx context.Context) error {
			logger.Infof("Deleting %s from account %q", target.FullName(), input.Account)
			return attributeTo(input.Account, provider.DeleteRepository(ctx, target.Owner, target.Name))
		}},
	})
	if err != nil {
		logger.Errorf("Delete of %s aborted at %s: %v", target.FullName(), failedStep, err)
		return entities.Failed(failedStep, err)
	}

	logger.Infof("Deleted %s", target.FullName())
	return entities.Succeeded("Deleted %s from %q", target.FullName(), input.Account)
}
