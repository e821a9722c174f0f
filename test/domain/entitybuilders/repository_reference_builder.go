//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

// RepositoryReferenceBuilder helps create repository references with a fluent interface.
type RepositoryReferenceBuilder struct {
	*testkit.BaseBuilder
	owner  string
	name   string
	branch string
}

// NewRepositoryReferenceBuilder creates a builder for a bare "demo" reference.
func NewRepositoryReferenceBuilder() *RepositoryReferenceBuilder {
	return &RepositoryReferenceBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "demo",
	}
}

// WithOwner sets the owner.
func (b *RepositoryReferenceBuilder) WithOwner(owner string) *RepositoryReferenceBuilder {
	b.owner = owner
	return b
}

// WithName sets the repository name.
func (b *RepositoryReferenceBuilder) WithName(name string) *RepositoryReferenceBuilder {
	b.name = name
	return b
}

// WithBranch limits the reference to one branch.
func (b *RepositoryReferenceBuilder) WithBranch(branch string) *RepositoryReferenceBuilder {
	b.branch = branch
	return b
}

// Build creates the reference (satisfies testkit.Builder interface).
func (b *RepositoryReferenceBuilder) Build() interface{} {
	return b.BuildReference()
}

// BuildReference creates the reference with a concrete return type.
func (b *RepositoryReferenceBuilder) BuildReference() entities.RepositoryReference {
	return entities.RepositoryReference{Owner: b.owner, Name: b.name, Branch: b.branch}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryReferenceBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.owner = ""
	b.name = "demo"
	b.branch = ""
	return b
}

// Clone creates a deep copy of the RepositoryReferenceBuilder.
func (b *RepositoryReferenceBuilder) Clone() testkit.Builder {
	return &RepositoryReferenceBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		owner:       b.owner,
		name:        b.name,
		branch:      b.branch,
	}
}
