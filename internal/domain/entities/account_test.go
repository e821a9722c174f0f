//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

func TestMaskToken(t *testing.T) {
	t.Parallel()

	t.Run("should keep only the last four characters visible", func(t *testing.T) {
		t.Parallel()

		// given
		token := "ghp_1234567890abcd"

		// when
		masked := entities.MaskToken(token)

		// then
		assert.Equal(t, "**************abcd", masked)
	})

	t.Run("should fully mask short tokens", func(t *testing.T) {
		t.Parallel()

		// given
		token := "abc123"

		// when
		masked := entities.MaskToken(token)

		// then
		assert.Equal(t, "******", masked)
	})

	t.Run("should return an empty string for an empty token", func(t *testing.T) {
		t.Parallel()

		// when
		masked := entities.MaskToken("")

		// then
		assert.Empty(t, masked)
	})
}

func TestAccountMasked(t *testing.T) {
	t.Parallel()

	t.Run("should keep the name and mask the token", func(t *testing.T) {
		t.Parallel()

		// given
		account := entities.Account{Name: "work", Token: "ghp_secret_value_9876"}

		// when
		masked := account.Masked()

		// then
		assert.Equal(t, "work", masked.Name)
		assert.NotContains(t, masked.MaskedToken, "secret")
		assert.Equal(t, "9876", masked.MaskedToken[len(masked.MaskedToken)-4:])
	})
}
