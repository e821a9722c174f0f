package repositories

import (
	"context"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

// ProviderRepository abstracts a Git hosting service account. Every instance
// is bound to one token, so every call runs as that account.
type ProviderRepository interface {
	// Name returns the provider identifier (e.g. "github").
	Name() string

	// AuthenticatedUser returns the login that owns the token.
	AuthenticatedUser(ctx context.Context) (string, error)

	// ListRepositories lists every repository visible to the account, following
	// pagination until exhausted.
	ListRepositories(ctx context.Context) ([]entities.RemoteRepository, error)

	// GetRepository returns the metadata needed to recreate a repository.
	GetRepository(ctx context.Context, owner, name string) (*entities.RepositoryDetails, error)

	// RepositoryExists reports whether owner/name exists and is visible.
	RepositoryExists(ctx context.Context, owner, name string) (bool, error)

	// CreateRepository creates a repository owned by the account.
	CreateRepository(
		ctx context.Context,
		spec entities.RepositorySpec,
	) (entities.RepositoryReference, error)

	// DeleteRepository deletes owner/name. It cannot be undone.
	DeleteRepository(ctx context.Context, owner, name string) error

	// BrowseContents lists a directory or returns a file of the repository at path.
	BrowseContents(
		ctx context.Context,
		ref entities.RepositoryReference,
		path string,
	) (*entities.Contents, error)

	// CloneURL returns an HTTPS URL for the repository with the account
	// credentials embedded.
	CloneURL(ref entities.RepositoryReference) string
}
