package workspace

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

const workspacePattern = "gitbridge-*"

// TempWorkspaceRepository creates workspaces as temporary directories under
// baseDir, or the OS temp directory when baseDir is empty.
type TempWorkspaceRepository struct {
	baseDir string
}

func NewTempWorkspaceRepository(baseDir string) repositories.WorkspaceRepository {
	return &TempWorkspaceRepository{baseDir: baseDir}
}

func (r *TempWorkspaceRepository) Acquire() (entities.Workspace, error) {
	if r.baseDir != "" {
		if err := os.MkdirAll(r.baseDir, 0o700); err != nil {
			return entities.Workspace{}, fmt.Errorf("failed to create work directory: %w", err)
		}
	}

	path, err := os.MkdirTemp(r.baseDir, workspacePattern)
	if err != nil {
		return entities.Workspace{}, fmt.Errorf("failed to create workspace: %w", err)
	}

	logger.Debugf("Acquired workspace %s", path)
	return entities.Workspace{Path: path}, nil
}

func (r *TempWorkspaceRepository) Release(workspace entities.Workspace) error {
	if workspace.Path == "" {
		return nil
	}
	if err := os.RemoveAll(workspace.Path); err != nil {
		return fmt.Errorf("failed to remove workspace %s: %w", workspace.Path, err)
	}

	logger.Debugf("Released workspace %s", workspace.Path)
	return nil
}
