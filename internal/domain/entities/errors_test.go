//go:build unit

package entities_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/gitbridge/internal/domain/entities"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("should name the account in authentication errors", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.AuthError{Account: "work", Reason: "token is invalid or expired"}

		// when
		msg := err.Error()

		// then
		assert.Equal(t, `authentication failed for account "work": token is invalid or expired`, msg)
	})

	t.Run("should include exit code and stderr in git errors", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.GitCommandError{Args: []string{"push", "--all"}, ExitCode: 1, Stderr: "rejected\n"}

		// when
		msg := err.Error()

		// then
		assert.Equal(t, "git push --all exited with code 1: rejected", msg)
	})

	t.Run("should include the reset time in rate limit errors", func(t *testing.T) {
		t.Parallel()

		// given
		reset := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		err := &entities.RateLimitError{Account: "work", ResetAt: reset}

		// when
		msg := err.Error()

		// then
		assert.Equal(t, `rate limit exceeded for account "work", resets at 2026-01-02T03:04:05Z`, msg)
	})

	t.Run("should unwrap configuration errors", func(t *testing.T) {
		t.Parallel()

		// given
		cause := errors.New("bad yaml")
		err := &entities.ConfigError{Path: "settings.yaml", Err: cause}

		// when
		unwrapped := errors.Unwrap(err)

		// then
		assert.Equal(t, cause, unwrapped)
	})

	t.Run("should describe a missing confirmation without front-end specific hints", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.ConfirmationRequiredError{Target: "alice/demo"}

		// when
		msg := err.Error()

		// then
		assert.Equal(t, "deleting alice/demo requires confirmation", msg)
		assert.NotContains(t, msg, "--")
	})

	t.Run("should name the repository a transfer would overwrite with itself", func(t *testing.T) {
		t.Parallel()

		// given
		err := &entities.SameRepositoryError{Repository: "alice/demo"}

		// when
		msg := err.Error()

		// then
		assert.Equal(t, "source and destination are both alice/demo", msg)
	})
}
