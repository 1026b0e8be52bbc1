package ports

import (
	"context"
	"time"

	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/models"
)

// CommitFetcher collects a user's commit activity from the code-hosting
// platform.
type CommitFetcher interface {
	// ListRepositories pages through the user's repositories,
	// most-recently-updated first. Ordering is not guaranteed stable
	// across retries while the upstream data is being modified.
	ListRepositories(ctx context.Context) ([]models.RepoRef, error)

	// FetchCommitsSince returns, with full diff detail, every commit
	// across all of the user's repositories authored after since.
	// Per-repository and per-commit failures are logged and skipped;
	// only a failed repository listing aborts the fetch.
	FetchCommitsSince(ctx context.Context, since time.Time) ([]models.Commit, error)
}
