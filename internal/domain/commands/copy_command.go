package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gitbridge/internal/infrastructure/repositories"
)

// Copy is the interface for copying a repository between accounts.
type Copy interface {
	Execute(ctx context.Context, input CopyInput) entities.OperationResult
}

// CopyInput names the repository and the two accounts. A bare reference is
// owned by the source account.
type CopyInput struct {
	Reference   entities.RepositoryReference
	Source      string
	Destination string
}

// CopyCommand replicates a repository with all branches and tags (or a single
// branch) into the destination account, creating it there when missing.
type CopyCommand struct {
	resolver   accountResolver
	git        repositories.GitRepository
	workspaces repositories.WorkspaceRepository
}

// NewCopyCommand creates a new CopyCommand.
func NewCopyCommand(
	settings *entities.Settings,
	accounts repositories.AccountRepository,
	providerRegistry *infraRepos.ProviderRegistry,
	git repositories.GitRepository,
	workspaces repositories.WorkspaceRepository,
) *CopyCommand {
	return &CopyCommand{
		resolver: accountResolver{
			settings:         settings,
			accounts:         accounts,
			providerRegistry: providerRegistry,
		},
		git:        git,
		workspaces: workspaces,
	}
}

// copyState is filled by the preparation step and read by the others.
type copyState struct {
	source      repositories.ProviderRepository
	destination repositories.ProviderRepository
	sourceRef   entities.RepositoryReference
	destRef     entities.RepositoryReference
	spec        entities.RepositorySpec
	workspace   entities.Workspace
}

// Execute runs ensure-destination, clone, push-all and push-tags in order and
// stops at the first failure. The workspace is always released. A destination
// created before a later failure is left in place.
func (it *CopyCommand) Execute(ctx context.Context, input CopyInput) entities.OperationResult {
	state := &copyState{}
	runner := &stepRunner{}

	failedStep, err := runner.run(ctx, []step{
		{name: StepPreparation, run: func(ctx context.Context) error {
			return it.prepare(ctx, input, state)
		}},
		{name: StepEnsureDestination, run: func(ctx context.Context) error {
			return it.ensureDestination(ctx, input.Destination, state)
		}},
		{name: StepClone, run: func(ctx context.Context) error {
			return it.clone(ctx, runner, state)
		}},
		{name: StepPushAll, run: func(ctx context.Context) error {
			logger.Infof("Pushing branches to %s", state.destRef.FullName())
			return it.git.PushAll(ctx, state.workspace.Path, state.destination.CloneURL(state.destRef))
		}},
		{name: StepPushTags, run: func(ctx context.Context) error {
			logger.Infof("Pushing tags to %s", state.destRef.FullName())
			return it.git.PushTags(ctx, state.workspace.Path, state.destination.CloneURL(state.destRef))
		}},
	})
	if err != nil {
		logger.Errorf("Copy of %s aborted at %s: %v", input.Reference, failedStep, err)
		return entities.Failed(failedStep, err)
	}

	logger.Infof("Copied %s to %s", state.sourceRef, state.destRef)
	return entities.Succeeded(
		"Copied %s from %q to %s in %q",
		state.sourceRef, input.Source, state.destRef.FullName(), input.Destination,
	)
}

// prepare resolves both accounts, both owners and the source metadata the
// destination should mirror.
func (it *CopyCommand) prepare(ctx context.Context, input CopyInput, state *copyState) error {
	var err error
	if state.source, err = it.resolver.provider(input.Source); err != nil {
		return err
	}
	if state.destination, err = it.resolver.provider(input.Destination); err != nil {
		return err
	}

	sourceOwner, err := it.resolver.owner(ctx, state.source, input.Reference, input.Source)
	if err != nil {
		return err
	}
	state.sourceRef = input.Reference.WithOwner(sourceOwner)

	destOwner, err := state.destination.AuthenticatedUser(ctx)
	if err != nil {
		return attributeTo(input.Destination, err)
	}
	state.destRef = entities.RepositoryReference{Owner: destOwner, Name: input.Reference.Name}
	if state.destRef.SameRepository(state.sourceRef) {
		return &entities.SameRepositoryError{Repository: state.sourceRef.FullName()}
	}

	details, err := state.source.GetRepository(ctx, sourceOwner, input.Reference.Name)
	if err != nil {
		return attributeTo(input.Source, err)
	}
	state.spec = entities.RepositorySpec{
		Name:        input.Reference.Name,
		Description: details.Description,
		Private:     details.Private || it.resolver.settings.PrivateByDefault,
	}
	return nil
}

// ensureDestination creates the destination repository only when it does not
// exist yet, so re-running a copy never creates it twice.
func (it *CopyCommand) ensureDestination(ctx context.Context, account string, state *copyState) error {
	exists, err := state.destination.RepositoryExists(ctx, state.destRef.Owner, state.destRef.Name)
	if err != nil {
		return attributeTo(account, err)
	}
	if exists {
		logger.Infof("Destination %s already exists", state.destRef.FullName())
		return nil
	}

	logger.Infof("Creating %s (private: %t)", state.destRef.FullName(), state.spec.Private)
	created, err := state.destination.CreateRepository(ctx, state.spec)
	var existsErr *entities.AlreadyExistsError
	if errors.As(err, &existsErr) {
		logger.Infof("Destination %s was created concurrently, reusing it", state.destRef.FullName())
		return nil
	}
	if err != nil {
		return attributeTo(account, err)
	}
	if created.Owner != "" {
		state.destRef = created
	}
	return nil
}

func (it *CopyCommand) clone(ctx context.Context, runner *stepRunner, state *copyState) error {
	workspace, err := it.workspaces.Acquire()
	if err != nil {
		return err
	}
	runner.onCleanup(func() {
		if releaseErr := it.workspaces.Release(workspace); releaseErr != nil {
			logger.Warnf("Failed to release workspace: %v", releaseErr)
		}
	})
	state.workspace = workspace

	logger.Infof("Cloning %s", state.sourceRef)
	return it.git.Clone(
		ctx, state.source.CloneURL(state.sourceRef), state.sourceRef.Branch, workspace.Path,
	)
}
