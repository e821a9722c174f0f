//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

// SpyProviderRepository implements repositories.ProviderRepository as a configurable spy.
type SpyProviderRepository struct {
	// --- identity ---
	ProviderName string
	Token        string
	Log          *CallLog

	// --- AuthenticatedUser ---
	Login   string
	UserErr error

	// --- ListRepositories ---
	Repositories []entities.RemoteRepository
	ListErr      error

	// --- GetRepository ---
	Details *entities.RepositoryDetails
	GetErr  error

	// --- RepositoryExists ---
	Exists    bool
	ExistsErr error

	// --- CreateRepository ---
	CreateErr    error
	CreatedSpecs []entities.RepositorySpec

	// --- DeleteRepository ---
	DeleteErr error
	Deleted   []string

	// --- BrowseContents ---
	Contents    *entities.Contents
	BrowseErr   error
	BrowsedRefs []entities.RepositoryReference
	BrowsedPath []string
}

var _ repositories.ProviderRepository = (*SpyProviderRepository)(nil)

func (p *SpyProviderRepository) Name() string { return p.ProviderName }

func (p *SpyProviderRepository) AuthenticatedUser(_ context.Context) (string, error) {
	return p.Login, p.UserErr
}

func (p *SpyProviderRepository) ListRepositories(_ context.Context) ([]entities.RemoteRepository, error) {
	p.Log.Record("list:" + p.Login)
	return p.Repositories, p.ListErr
}

func (p *SpyProviderRepository) GetRepository(
	_ context.Context, owner, name string,
) (*entities.RepositoryDetails, error) {
	if p.GetErr != nil {
		return nil, p.GetErr
	}
	if p.Details != nil {
		return p.Details, nil
	}
	return &entities.RepositoryDetails{
		Repository: entities.RemoteRepository{Name: name, Organization: owner},
	}, nil
}

func (p *SpyProviderRepository) RepositoryExists(_ context.Context, owner, name string) (bool, error) {
	p.Log.Record(fmt.Sprintf("exists:%s/%s", owner, name))
	return p.Exists, p.ExistsErr
}

func (p *SpyProviderRepository) CreateRepository(
	_ context.Context, spec entities.RepositorySpec,
) (entities.RepositoryReference, error) {
	p.Log.Record("create:" + spec.Name)
	p.CreatedSpecs = append(p.CreatedSpecs, spec)
	if p.CreateErr != nil {
		return entities.RepositoryReference{}, p.CreateErr
	}
	p.Exists = true
	return entities.RepositoryReference{Owner: p.Login, Name: spec.Name}, nil
}

func (p *SpyProviderRepository) DeleteRepository(_ context.Context, owner, name string) error {
	p.Log.Record(fmt.Sprintf("delete:%s/%s", owner, name))
	if p.DeleteErr != nil {
		return p.DeleteErr
	}
	p.Deleted = append(p.Deleted, owner+"/"+name)
	return nil
}

func (p *SpyProviderRepository) BrowseContents(
	_ context.Context, ref entities.RepositoryReference, path string,
) (*entities.Contents, error) {
	p.BrowsedRefs = append(p.BrowsedRefs, ref)
	p.BrowsedPath = append(p.BrowsedPath, path)
	return p.Contents, p.BrowseErr
}

func (p *SpyProviderRepository) CloneURL(ref entities.RepositoryReference) string {
	return fmt.Sprintf("https://x-access-token:%s@github.test/%s/%s.git", p.Token, ref.Owner, ref.Name)
}
