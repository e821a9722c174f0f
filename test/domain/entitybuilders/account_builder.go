//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

// AccountBuilder helps create test accounts with a fluent interface.
type AccountBuilder struct {
	*testkit.BaseBuilder
	name  string
	token string
}

// NewAccountBuilder creates a new account builder with sensible defaults.
func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "personal",
		token:       "ghp_test_token_0000",
	}
}

// WithName sets the account name.
func (b *AccountBuilder) WithName(name string) *AccountBuilder {
	b.name = name
	return b
}

// WithToken sets the account token.
func (b *AccountBuilder) WithToken(token string) *AccountBuilder {
	b.token = token
	return b
}

// Build creates the account (satisfies testkit.Builder interface).
func (b *AccountBuilder) Build() interface{} {
	return b.BuildAccount()
}

// BuildAccount creates the account with a concrete return type.
func (b *AccountBuilder) BuildAccount() entities.Account {
	return entities.Account{Name: b.name, Token: b.token}
}

// Reset clears the builder state, allowing it to be reused.
func (b *AccountBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "personal"
	b.token = "ghp_test_token_0000"
	return b
}

// Clone creates a deep copy of the AccountBuilder.
func (b *AccountBuilder) Clone() testkit.Builder {
	return &AccountBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		token:       b.token,
	}
}
