package repositories

import "context"

// GitRepository runs git transfers against a local working directory. Every
// failure is final: nothing is retried.
type GitRepository interface {
	// Clone clones url into dir. A non-empty branch limits the clone to it.
	Clone(ctx context.Context, url, branch, dir string) error

	// PushAll pushes every local branch of dir to url.
	PushAll(ctx context.Context, dir, url string) error

	// PushTags pushes every tag of dir to url.
	PushTags(ctx context.Context, dir, url string) error
}
