//go:build unit

package accounts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/infrastructure/repositories/accounts"
)

// The keyring mock is process-wide, so these tests do not run in parallel.
func TestKeyringAccountRepository(t *testing.T) {
	t.Run("should save and get an account", func(t *testing.T) {
		// given
		keyring.MockInit()
		repo := accounts.NewKeyringAccountRepository()

		// when
		err := repo.Save(entities.Account{Name: "work", Token: "ghp_keyring_token"})

		// then
		require.NoError(t, err)
		account, getErr := repo.Get("work")
		require.NoError(t, getErr)
		assert.Equal(t, "ghp_keyring_token", account.Token)
	})

	t.Run("should reject a duplicate name", func(t *testing.T) {
		// given
		keyring.MockInit()
		repo := accounts.NewKeyringAccountRepository()
		require.NoError(t, repo.Save(entities.Account{Name: "work", Token: "first-token"}))

		// when
		err := repo.Save(entities.Account{Name: "work", Token: "second-token"})

		// then
		var dupErr *entities.DuplicateAccountError
		require.ErrorAs(t, err, &dupErr)
		account, _ := repo.Get("work")
		assert.Equal(t, "first-token", account.Token)
	})

	t.Run("should return NotFoundError for an unknown account", func(t *testing.T) {
		// given
		keyring.MockInit()
		repo := accounts.NewKeyringAccountRepository()

		// when
		_, err := repo.Get("missing")

		// then
		var notFound *entities.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("should remove an account from the index and the keychain", func(t *testing.T) {
		// given
		keyring.MockInit()
		repo := accounts.NewKeyringAccountRepository()
		require.NoError(t, repo.Save(entities.Account{Name: "work", Token: "ghp_keyring_token"}))
		require.NoError(t, repo.Save(entities.Account{Name: "home", Token: "ghp_other_token"}))

		// when
		err := repo.Remove("work")

		// then
		require.NoError(t, err)
		list, _ := repo.List()
		assert.Equal(t, []entities.MaskedAccount{{Name: "home", MaskedToken: "***********oken"}}, list)
		_, getErr := repo.Get("work")
		var notFound *entities.NotFoundError
		assert.ErrorAs(t, getErr, &notFound)
	})

	t.Run("should return NotFoundError when removing an unknown account", func(t *testing.T) {
		// given
		keyring.MockInit()
		repo := accounts.NewKeyringAccountRepository()

		// when
		err := repo.Remove("missing")

		// then
		var notFound *entities.NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("should surface keychain failures as KeyringError", func(t *testing.T) {
		// given
		keyring.MockInitWithError(assert.AnError)
		repo := accounts.NewKeyringAccountRepository()

		// when
		_, err := repo.List()

		// then
		var keyringErr *accounts.KeyringError
		require.ErrorAs(t, err, &keyringErr)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
