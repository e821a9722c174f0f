package entities

import (
	"fmt"
	"strings"
	"time"
)

// AuthError means the remote rejected the account token (invalid, expired or
// lacking a scope).
type AuthError struct {
	Account string
	Reason  string
}

func (e *AuthError) Error() string {
	msg := "authentication failed"
	if e.Account != "" {
		msg = fmt.Sprintf("authentication failed for account %q", e.Account)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// NotFoundError means an account or a repository does not exist.
type NotFoundError struct {
	Kind string // "account" or "repository"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// DuplicateAccountError means an account with the same name is already stored.
type DuplicateAccountError struct {
	Name string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account %q already exists", e.Name)
}

// AlreadyExistsError means the remote refused to create a repository because
// the name is taken.
type AlreadyExistsError struct {
	Owner string
	Name  string
}

func (e *AlreadyExistsError) Error() string {
	if e.Owner == "" {
		return fmt.Sprintf("repository %q already exists", e.Name)
	}
	return fmt.Sprintf("repository %q already exists", e.Owner+"/"+e.Name)
}

// GitCommandError is a git invocation that exited non-zero. Args and Stderr
// are already free of credentials.
type GitCommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *GitCommandError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("git %s exited with code %d", strings.Join(e.Args, " "), e.ExitCode)
	}
	return fmt.Sprintf(
		"git %s exited with code %d: %s", strings.Join(e.Args, " "), e.ExitCode, stderr,
	)
}

// ConfirmationRequiredError means a destructive operation was requested
// without explicit confirmation.
type ConfirmationRequiredError struct {
	Target string
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("deleting %s requires confirmation", e.Target)
}

// SameRepositoryError means the source and destination of a transfer resolve
// to the same remote repository.
type SameRepositoryError struct {
	Repository string
}

func (e *SameRepositoryError) Error() string {
	return fmt.Sprintf("source and destination are both %s", e.Repository)
}

// RateLimitError means the remote throttled the account.
type RateLimitError struct {
	Account string
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	msg := "rate limit exceeded"
	if e.Account != "" {
		msg = fmt.Sprintf("rate limit exceeded for account %q", e.Account)
	}
	if !e.ResetAt.IsZero() {
		msg += ", resets at " + e.ResetAt.Format(time.RFC3339)
	}
	return msg
}

// ConfigError means the configuration or settings file could not be used.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration %q: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
