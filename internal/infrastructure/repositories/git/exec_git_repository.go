package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
	"github.com/rios0rios0/gitbridge/internal/domain/repositories"
)

// ExecGitRepository runs the git binary.
type ExecGitRepository struct {
	binary  string
	timeout time.Duration
}

// NewExecGitRepository creates an executor for binary. A zero timeout means
// commands are only bounded by the caller's context.
func NewExecGitRepository(binary string, timeout time.Duration) repositories.GitRepository {
	if binary == "" {
		binary = entities.DefaultGitBinary
	}
	return &ExecGitRepository{binary: binary, timeout: timeout}
}

// Clone makes a bare clone so every branch and tag is available for pushing.
func (r *ExecGitRepository) Clone(ctx context.Context, url, branch, dir string) error {
	args := []string{"clone", "--bare"}
	if branch != "" {
		args = append(args, "--single-branch", "--branch", branch)
	}
	args = append(args, url, dir)
	return r.run(ctx, "", args...)
}

func (r *ExecGitRepository) PushAll(ctx context.Context, dir, url string) error {
	return r.run(ctx, dir, "push", "--all", url)
}

func (r *ExecGitRepository) PushTags(ctx context.Context, dir, url string) error {
	return r.run(ctx, dir, "push", "--tags", url)
}

func (r *ExecGitRepository) run(ctx context.Context, dir string, args ...string) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	safeArgs := redactArgs(args)
	logger.Debugf("Running git %s", strings.Join(safeArgs, " "))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = dir
	cmd.Stderr = &stderr
	// never block on a credential prompt
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	err := cmd.Run()
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	message := stderr.String()
	if ctx.Err() != nil {
		message = strings.TrimSpace(message + "\n" + ctx.Err().Error())
	} else if exitCode == -1 {
		message = strings.TrimSpace(message + "\n" + err.Error())
	}

	return &entities.GitCommandError{
		Args:     safeArgs,
		ExitCode: exitCode,
		Stderr:   entities.RedactCredentials(message),
	}
}

func redactArgs(args []string) []string {
	safe := make([]string, len(args))
	for i, arg := range args {
		safe[i] = entities.RedactCredentials(arg)
	}
	return safe
}
