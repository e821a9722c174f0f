//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainRepos "github.com/rios0rios0/gitbridge/internal/domain/repositories"
	"github.com/rios0rios0/gitbridge/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/gitbridge/test/infrastructure/repositorydoubles"
)

func TestProviderRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should build a provider bound to the token", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewProviderRegistry()
		reg.Register("github", func(token string) domainRepos.ProviderRepository {
			return &doubles.SpyProviderRepository{ProviderName: "github", Token: token}
		})

		// when
		provider, err := reg.Get("github", "ghp_token")

		// then
		require.NoError(t, err)
		assert.Equal(t, "github", provider.Name())
		assert.Equal(t, "ghp_token", provider.(*doubles.SpyProviderRepository).Token)
	})

	t.Run("should list the registered providers when the name is unknown", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewProviderRegistry()
		factory := func(string) domainRepos.ProviderRepository { return &doubles.SpyProviderRepository{} }
		reg.Register("github", factory)
		reg.Register("gitea", factory)

		// when
		_, err := reg.Get("gitlab", "token")

		// then
		require.EqualError(t, err, `unknown provider type: "gitlab" (available: gitea, github)`)
		assert.Equal(t, []string{"gitea", "github"}, reg.Names())
	})
}
