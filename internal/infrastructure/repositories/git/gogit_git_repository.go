package git

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

const (
	sourceRemote      = "source"
	destinationRemote = "destination"

	headsRefSpec = "refs/heads/*:refs/heads/*"
	tagsRefSpec  = "refs/tags/*:refs/tags/*"
)

// GoGitRepository transfers repositories in-process with go-git, so no git
// binary is needed.
type GoGitRepository struct {
	timeout time.Duration
}

func NewGoGitRepository(timeout time.Duration) repositories.GitRepository {
	return &GoGitRepository{timeout: timeout}
}

// Clone initialises a bare repository in dir and fetches branches and tags
// into their local names, which is what a mirror push expects.
func (r *GoGitRepository) Clone(ctx context.Context, rawURL, branch, dir string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	endpoint, auth, err := splitCredentials(rawURL)
	if err != nil {
		return gitError(err, "clone", rawURL)
	}
	logger.Debugf("Fetching %s into %s", endpoint, dir)

	repo, err := gogit.PlainInit(dir, true)
	if err != nil {
		return gitError(err, "init", dir)
	}

	refSpecs := []config.RefSpec{"+" + headsRefSpec, "+" + tagsRefSpec}
	tags := gogit.AllTags
	if branch != "" {
		ref := "refs/heads/" + branch
		refSpecs = []config.RefSpec{config.RefSpec(fmt.Sprintf("+%s:%s", ref, ref))}
		tags = gogit.TagFollowing
	}

	remote := gogit.NewRemote(repo.Storer, &config.RemoteConfig{
		Name: sourceRemote,
		URLs: []string{endpoint},
	})
	err = remote.FetchContext(ctx, &gogit.FetchOptions{
		RemoteName: sourceRemote,
		RefSpecs:   refSpecs,
		Auth:       auth,
		Tags:       tags,
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return gitError(err, "clone", rawURL)
	}
	return nil
}

func (r *GoGitRepository) PushAll(ctx context.Context, dir, rawURL string) error {
	return r.push(ctx, dir, rawURL, headsRefSpec, "--all")
}

func (r *GoGitRepository) PushTags(ctx context.Context, dir, rawURL string) error {
	return r.push(ctx, dir, rawURL, tagsRefSpec, "--tags")
}

func (r *GoGitRepository) push(ctx context.Context, dir, rawURL, refSpec, flag string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	endpoint, auth, err := splitCredentials(rawURL)
	if err != nil {
		return gitError(err, "push", flag, rawURL)
	}

	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return gitError(err, "push", flag, rawURL)
	}

	remote := gogit.NewRemote(repo.Storer, &config.RemoteConfig{
		Name: destinationRemote,
		URLs: []string{endpoint},
	})
	err = remote.PushContext(ctx, &gogit.PushOptions{
		RemoteName: destinationRemote,
		RefSpecs:   []config.RefSpec{config.RefSpec(refSpec)},
		Auth:       auth,
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return gitError(err, "push", flag, rawURL)
	}
	return nil
}

func (r *GoGitRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout > 0 {
		return context.WithTimeout(ctx, r.timeout)
	}
	return context.WithCancel(ctx)
}

// splitCredentials moves URL userinfo into basic auth so credentials never
// end up in the repository config.
func splitCredentials(rawURL string) (string, transport.AuthMethod, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", nil, errors.New("invalid repository URL")
	}
	if parsed.User == nil {
		return rawURL, nil, nil
	}

	password, _ := parsed.User.Password()
	auth := &githttp.BasicAuth{Username: parsed.User.Username(), Password: password}
	parsed.User = nil
	return parsed.String(), auth, nil
}

// gitError reports a go-git failure the same way as a failed git process.
// There is no process, so the exit code is -1.
func gitError(err error, args ...string) error {
	return &entities.GitCommandError{
		Args:     redactArgs(args),
		ExitCode: -1,
		Stderr:   entities.RedactCredentials(err.Error()),
	}
}
