//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

// SpyWorkspaceRepository implements repositories.WorkspaceRepository without
// touching the filesystem.
type SpyWorkspaceRepository struct {
	Log        *CallLog
	AcquireErr error

	Acquired []entities.Workspace
	Released []entities.Workspace
}

var _ repositories.WorkspaceRepository = (*SpyWorkspaceRepository)(nil)

func (w *SpyWorkspaceRepository) Acquire() (entities.Workspace, error) {
	if w.AcquireErr != nil {
		return entities.Workspace{}, w.AcquireErr
	}
	w.Log.Record("acquire")
	workspace := entities.Workspace{Path: fmt.Sprintf("/tmp/gitbridge-test-%d", len(w.Acquired))}
	w.Acquired = append(w.Acquired, workspace)
	return workspace, nil
}

func (w *SpyWorkspaceRepository) Release(workspace entities.Workspace) error {
	w.Log.Record("release")
	w.Released = append(w.Released, workspace)
	return nil
}
