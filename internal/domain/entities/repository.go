package entities

import (
	"errors"
	"fmt"
	"strings"

	gitforgeEntities "github.com/rios0rios0/gitforge/pkg/global/domain/entities"
)

// RemoteRepository is re-exported from gitforge. It is the remote's full
// description of a repository as returned by listings and lookups.
type RemoteRepository = gitforgeEntities.Repository

// File is re-exported from gitforge. It describes one entry of a repository
// contents listing.
type File = gitforgeEntities.File

// ErrInvalidReference is returned when a repository argument cannot be parsed.
var ErrInvalidReference = errors.New("invalid repository reference")

// RepositoryReference points at a repository on the remote. Owner may be empty
// until it is inferred from the account an operation runs against. Branch is
// optional; empty means the remote's default branch.
type RepositoryReference struct {
	Owner  string
	Name   string
	Branch string
}

// ParseRepositoryReference parses "owner/repo" or a bare "repo". A trailing
// ".git" is ignored.
func ParseRepositoryReference(raw, branch string) (RepositoryReference, error) {
	value := strings.TrimSuffix(strings.TrimSpace(raw), ".git")
	if value == "" {
		return RepositoryReference{}, fmt.Errorf("%w: empty repository", ErrInvalidReference)
	}

	parts := strings.Split(value, "/")
	switch len(parts) {
	case 1:
		return RepositoryReference{Name: parts[0], Branch: strings.TrimSpace(branch)}, nil
	case 2: //nolint:mnd // owner/name
		if parts[0] == "" || parts[1] == "" {
			return RepositoryReference{}, fmt.Errorf("%w: %q", ErrInvalidReference, raw)
		}
		return RepositoryReference{
			Owner:  parts[0],
			Name:   parts[1],
			Branch: strings.TrimSpace(branch),
		}, nil
	default:
		return RepositoryReference{}, fmt.Errorf(
			"%w: %q (expected owner/repo or repo)", ErrInvalidReference, raw,
		)
	}
}

// HasOwner reports whether the owner is known.
func (r RepositoryReference) HasOwner() bool {
	return r.Owner != ""
}

// WithOwner returns a copy of the reference with the given owner.
func (r RepositoryReference) WithOwner(owner string) RepositoryReference {
	r.Owner = owner
	return r
}

// FullName returns "owner/name", or just the name when the owner is unknown.
func (r RepositoryReference) FullName() string {
	if r.Owner == "" {
		return r.Name
	}
	return r.Owner + "/" + r.Name
}

// SameRepository reports whether both references name the same repository.
// Owners compare case-insensitively, as they do on the remote.
func (r RepositoryReference) SameRepository(other RepositoryReference) bool {
	return strings.EqualFold(r.Owner, other.Owner) && r.Name == other.Name
}

func (r RepositoryReference) String() string {
	if r.Branch == "" {
		return r.FullName()
	}
	return r.FullName() + "@" + r.Branch
}

// RepositorySpec carries the attributes used when creating a repository.
type RepositorySpec struct {
	Name        string
	Description string
	Private     bool
}

// RepositoryDetails is the metadata of an existing repository needed to
// recreate it elsewhere.
type RepositoryDetails struct {
	Repository  RemoteRepository
	Description string
	Private     bool
}

// Contents is one level of a repository contents listing, or a single file
// when IsFile is set.
type Contents struct {
	Path    string
	IsFile  bool
	Entries []File
	Content string
}
