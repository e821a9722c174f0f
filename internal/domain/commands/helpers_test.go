//go:build unit

package commands_test

import (
	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/gitbridge/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/gitbridge/test/infrastructure/repositorydoubles"
)

const (
	sourceToken = "ghp_source_token_1111"
	destToken   = "ghp_destination_2222"
)

// fixture wires two accounts, "src" owned by alice and "dst" owned by bob,
// to spies sharing one call log.
type fixture struct {
	log        *doubles.CallLog
	settings   *entities.Settings
	accounts   *doubles.InMemoryAccountRepository
	registry   *infraRepos.ProviderRegistry
	source     *doubles.SpyProviderRepository
	dest       *doubles.SpyProviderRepository
	git        *doubles.SpyGitRepository
	workspaces *doubles.SpyWorkspaceRepository
}

func newFixture() *fixture {
	log := &doubles.CallLog{}
	f := &fixture{
		log:      log,
		settings: &entities.Settings{Provider: "github"},
		accounts: doubles.NewInMemoryAccountRepository(
			entities.Account{Name: "src", Token: sourceToken},
			entities.Account{Name: "dst", Token: destToken},
		),
		source:     &doubles.SpyProviderRepository{ProviderName: "github", Token: sourceToken, Login: "alice", Log: log},
		dest:       &doubles.SpyProviderRepository{ProviderName: "github", Token: destToken, Login: "bob", Log: log},
		git:        &doubles.SpyGitRepository{Log: log},
		workspaces: &doubles.SpyWorkspaceRepository{Log: log},
	}

	f.registry = infraRepos.NewProviderRegistry()
	f.registry.Register("github", func(token string) repositories.ProviderRepository {
		if token == destToken {
			return f.dest
		}
		return f.source
	})
	return f
}
