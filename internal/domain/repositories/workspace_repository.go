package repositories

import "github.com/rios0rios0/gitbridge/internal/domain/entities"

// WorkspaceRepository hands out scoped temporary directories.
type WorkspaceRepository interface {
	Acquire() (entities.Workspace, error)
	Release(workspace entities.Workspace) error
}
