//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

// GitCall is one recorded GitRepository invocation.
type GitCall struct {
	Operation string
	URL       string
	Branch    string
	Dir       string
}

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
type SpyGitRepository struct {
	Log *CallLog

	CloneErr    error
	PushAllErr  error
	PushTagsErr error

	Calls []GitCall
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (g *SpyGitRepository) Clone(_ context.Context, url, branch, dir string) error {
	g.Log.Record("clone")
	g.Calls = append(g.Calls, GitCall{Operation: "clone", URL: url, Branch: branch, Dir: dir})
	return g.CloneErr
}

func (g *SpyGitRepository) PushAll(_ context.Context, dir, url string) error {
	g.Log.Record("push-all")
	g.Calls = append(g.Calls, GitCall{Operation: "push-all", URL: url, Dir: dir})
	return g.PushAllErr
}

func (g *SpyGitRepository) PushTags(_ context.Context, dir, url string) error {
	g.Log.Record("push-tags")
	g.Calls = append(g.Calls, GitCall{Operation: "push-tags", URL: url, Dir: dir})
	return g.PushTagsErr
}
