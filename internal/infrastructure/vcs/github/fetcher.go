package github

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/go-github/v80/github"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/models"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/ports"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/logger"
	"golang.org/x/oauth2"
)

var _ ports.CommitFetcher = (*Fetcher)(nil)

const (
	listPageSize = 100
	shortSHALen  = 7
)

// RepositoriesService is the slice of the go-github client the fetcher
// needs, kept narrow so tests can mock it.
type RepositoriesService interface {
	ListByUser(ctx context.Context, user string, opts *github.RepositoryListByUserOptions) ([]*github.Repository, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error)
	GetCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) (*github.RepositoryCommit, *github.Response, error)
}

// Fetcher collects a user's commit activity via the GitHub REST API.
//
// Known limitation: the pagination loops assume the listing order is
// stable across pages. If the upstream data changes mid-run, commits
// can be duplicated or missed; this is accepted, not defended against.
type Fetcher struct {
	repos    RepositoriesService
	username string
}

func NewFetcher(cfg *config.Config) *Fetcher {
	var httpClient *http.Client
	if cfg.GitHub.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHub.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &Fetcher{
		repos:    client.Repositories,
		username: cfg.GitHub.Username,
	}
}

func NewFetcherWithService(repos RepositoriesService, username string) *Fetcher {
	return &Fetcher{
		repos:    repos,
		username: username,
	}
}

// ListRepositories pages through the user's repositories, most recently
// updated first, stopping at the first short page.
func (f *Fetcher) ListRepositories(ctx context.Context) ([]models.RepoRef, error) {
	var refs []models.RepoRef

	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{Page: 1, PerPage: listPageSize},
	}

	for {
		repos, _, err := f.repos.ListByUser(ctx, f.username, opts)
		if err != nil {
			return nil, mapError("listing repositories", err)
		}

		for _, repo := range repos {
			refs = append(refs, models.RepoRef{
				Owner: repo.GetOwner().GetLogin(),
				Name:  repo.GetName(),
			})
		}

		if len(repos) < listPageSize {
			break
		}
		opts.Page++
	}

	return refs, nil
}

// listCommitsSince pages through a repository's commits newer than
// since. A 409 Conflict means the repository is empty and yields an
// empty result instead of an error.
func (f *Fetcher) listCommitsSince(ctx context.Context, repo models.RepoRef, since time.Time) ([]*github.RepositoryCommit, error) {
	var commits []*github.RepositoryCommit

	opts := &github.CommitsListOptions{
		Since:       since,
		ListOptions: github.ListOptions{Page: 1, PerPage: listPageSize},
	}

	for {
		page, _, err := f.repos.ListCommits(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			if statusCodeOf(err) == http.StatusConflict {
				return nil, nil
			}
			return nil, mapError("listing commits for "+repo.FullName(), err)
		}

		commits = append(commits, page...)

		if len(page) < listPageSize {
			break
		}
		opts.Page++
	}

	return commits, nil
}

// getCommitDetail fetches a single commit with its file-level diff.
func (f *Fetcher) getCommitDetail(ctx context.Context, repo models.RepoRef, stub *github.RepositoryCommit) (models.Commit, error) {
	detail, _, err := f.repos.GetCommit(ctx, repo.Owner, repo.Name, stub.GetSHA(), nil)
	if err != nil {
		return models.Commit{}, mapError("fetching commit detail for "+repo.FullName(), err)
	}

	sha := stub.GetSHA()
	if len(sha) > shortSHALen {
		sha = sha[:shortSHALen]
	}

	commit := models.Commit{
		Repository: repo.FullName(),
		SHA:        sha,
		Message:    stub.GetCommit().GetMessage(),
		Author:     stub.GetCommit().GetAuthor().GetName(),
		Date:       stub.GetCommit().GetAuthor().GetDate().Time,
		URL:        stub.GetHTMLURL(),
		Stats: models.CommitStats{
			Additions: detail.GetStats().GetAdditions(),
			Deletions: detail.GetStats().GetDeletions(),
			Total:     detail.GetStats().GetTotal(),
		},
	}

	for _, file := range detail.Files {
		commit.Files = append(commit.Files, models.FileChange{
			Filename:  file.GetFilename(),
			Status:    file.GetStatus(),
			Additions: file.GetAdditions(),
			Deletions: file.GetDeletions(),
			Changes:   file.GetChanges(),
			Patch:     file.GetPatch(),
		})
	}

	return commit, nil
}

// FetchCommitsSince collects every commit newer than since across all
// of the user's repositories and resolves full diff detail for each.
// Per-repository and per-commit failures are logged and skipped; only a
// failed repository listing aborts.
func (f *Fetcher) FetchCommitsSince(ctx context.Context, since time.Time) ([]models.Commit, error) {
	repos, err := f.ListRepositories(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "repositories listed", "repos", len(repos))

	type stubRef struct {
		repo models.RepoRef
		stub *github.RepositoryCommit
	}
	var stubs []stubRef

	for _, repo := range repos {
		commits, err := f.listCommitsSince(ctx, repo, since)
		if err != nil {
			logger.Warn(ctx, "skipping repository", "repo", repo.FullName(), "error", err)
			continue
		}
		if len(commits) > 0 {
			logger.Info(ctx, "commits found", "repo", repo.FullName(), "commits", len(commits))
		}
		for _, stub := range commits {
			stubs = append(stubs, stubRef{repo: repo, stub: stub})
		}
	}

	var results []models.Commit
	for _, s := range stubs {
		commit, err := f.getCommitDetail(ctx, s.repo, s.stub)
		if err != nil {
			logger.Warn(ctx, "skipping commit", "repo", s.repo.FullName(), "sha", s.stub.GetSHA(), "error", err)
			continue
		}
		results = append(results, commit)
	}

	return results, nil
}

// mapError classifies a go-github error into the domain error kinds:
// credential rejections become AuthError, everything else NetworkError.
func mapError(op string, err error) error {
	switch statusCodeOf(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domainerrors.NewAuthError("github", op, err)
	default:
		return domainerrors.NewNetworkError("github", op, err)
	}
}

func statusCodeOf(err error) int {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode
	}
	return 0
}
