package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gitbridge/internal/domain/repositories"
	accountRepo "github.com/rios0rios0/gitbridge/internal/infrastructure/repositories/accounts"
	gitRepo "github.com/rios0rios0/gitbridge/internal/infrastructure/repositories/git"
	ghRepo "github.com/rios0rios0/gitbridge/internal/infrastructure/repositories/github"
	wsRepo "github.com/rios0rios0/gitbridge/internal/infrastructure/repositories/workspace"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewProviderRegistryFromSettings); err != nil {
		return err
	}
	if err := container.Provide(NewAccountRepository); err != nil {
		return err
	}
	if err := container.Provide(NewGitRepository); err != nil {
		return err
	}
	return container.Provide(func(settings *entities.Settings) domainRepos.WorkspaceRepository {
		return wsRepo.NewTempWorkspaceRepository(settings.WorkDir)
	})
}

// NewProviderRegistryFromSettings registers every provider factory, configured
// with the API endpoint and timeout from settings.
func NewProviderRegistryFromSettings(settings *entities.Settings) *ProviderRegistry {
	reg := NewProviderRegistry()
	reg.Register("github", func(token string) domainRepos.ProviderRepository {
		return ghRepo.NewGitHubProviderRepository(token, ghRepo.Options{
			APIURL:  settings.APIURL,
			Timeout: settings.HTTPTimeout,
		})
	})
	return reg
}

// NewAccountRepository picks the secret backend selected in settings.
func NewAccountRepository(settings *entities.Settings) domainRepos.AccountRepository {
	if settings.SecretBackend == entities.SecretBackendKeyring {
		return accountRepo.NewKeyringAccountRepository()
	}
	return accountRepo.NewFileAccountRepository(settings.ConfigPath)
}

// NewGitRepository picks the git backend selected in settings.
func NewGitRepository(settings *entities.Settings) domainRepos.GitRepository {
	if settings.GitBackend == entities.GitBackendGoGit {
		return gitRepo.NewGoGitRepository(settings.GitTimeout)
	}
	return gitRepo.NewExecGitRepository(settings.GitBinary, settings.GitTimeout)
}
