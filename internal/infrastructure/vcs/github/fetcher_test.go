package github

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-github/v80/github"
	domainerrors "github.com/prabhakar1234pr/github-commit-summarizer/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ghRepo(owner, name string) *github.Repository {
	return &github.Repository{
		Name:  github.Ptr(name),
		Owner: &github.User{Login: github.Ptr(owner)},
	}
}

func ghCommitStub(sha, message string) *github.RepositoryCommit {
	return &github.RepositoryCommit{
		SHA:     github.Ptr(sha),
		HTMLURL: github.Ptr("https://github.com/octocat/widgets/commit/" + sha),
		Commit: &github.Commit{
			Message: github.Ptr(message),
			Author: &github.CommitAuthor{
				Name: github.Ptr("octocat"),
				Date: &github.Timestamp{Time: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
			},
		},
	}
}

func ghCommitDetail(sha string) *github.RepositoryCommit {
	return &github.RepositoryCommit{
		SHA: github.Ptr(sha),
		Stats: &github.CommitStats{
			Additions: github.Ptr(12),
			Deletions: github.Ptr(3),
			Total:     github.Ptr(15),
		},
		Files: []*github.CommitFile{
			{
				Filename:  github.Ptr("main.go"),
				Status:    github.Ptr("modified"),
				Additions: github.Ptr(12),
				Deletions: github.Ptr(3),
				Changes:   github.Ptr(15),
				Patch:     github.Ptr("@@ -1 +1 @@"),
			},
		},
	}
}

func ghError(status int) error {
	return &github.ErrorResponse{
		Response: &http.Response{
			StatusCode: status,
			Request:    &http.Request{},
		},
	}
}

func TestFetcher_ListRepositories(t *testing.T) {
	t.Run("should stop at the first short page", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		fetcher := NewFetcherWithService(repos, "octocat")

		repos.On("ListByUser", mock.Anything, "octocat", mock.Anything).
			Return([]*github.Repository{ghRepo("octocat", "widgets"), ghRepo("octocat", "gadgets")}, &github.Response{}, nil).Once()

		refs, err := fetcher.ListRepositories(context.Background())

		require.NoError(t, err)
		require.Len(t, refs, 2)
		assert.Equal(t, "octocat/widgets", refs[0].FullName())
		repos.AssertNumberOfCalls(t, "ListByUser", 1)
	})

	t.Run("should request further pages after a full page", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		fetcher := NewFetcherWithService(repos, "octocat")

		fullPage := make([]*github.Repository, listPageSize)
		for i := range fullPage {
			fullPage[i] = ghRepo("octocat", fmt.Sprintf("repo-%d", i))
		}

		repos.On("ListByUser", mock.Anything, "octocat", mock.MatchedBy(func(opts *github.RepositoryListByUserOptions) bool {
			return opts.Page == 1
		})).Return(fullPage, &github.Response{}, nil).Once()
		repos.On("ListByUser", mock.Anything, "octocat", mock.MatchedBy(func(opts *github.RepositoryListByUserOptions) bool {
			return opts.Page == 2
		})).Return([]*github.Repository{ghRepo("octocat", "last")}, &github.Response{}, nil).Once()

		refs, err := fetcher.ListRepositories(context.Background())

		require.NoError(t, err)
		assert.Len(t, refs, listPageSize+1)
		repos.AssertExpectations(t)
	})

	t.Run("should map unauthorized to AuthError", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		fetcher := NewFetcherWithService(repos, "octocat")

		repos.On("ListByUser", mock.Anything, "octocat", mock.Anything).
			Return(nil, nil, ghError(http.StatusUnauthorized))

		_, err := fetcher.ListRepositories(context.Background())

		var authErr *domainerrors.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "github", authErr.Service)
	})

	t.Run("should map transport failures to NetworkError", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		fetcher := NewFetcherWithService(repos, "octocat")

		repos.On("ListByUser", mock.Anything, "octocat", mock.Anything).
			Return(nil, nil, fmt.Errorf("connection refused"))

		_, err := fetcher.ListRepositories(context.Background())

		var netErr *domainerrors.NetworkError
		assert.ErrorAs(t, err, &netErr)
	})
}

func TestFetcher_FetchCommitsSince(t *testing.T) {
	since := time.Date(2025, 5, 31, 10, 0, 0, 0, time.UTC)

	t.Run("should assemble commit records with diff detail", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		fetcher := NewFetcherWithService(repos, "octocat")

		repos.On("ListByUser", mock.Anything, "octocat", mock.Anything).
			Return([]*github.Repository{ghRepo("octocat", "widgets")}, &github.Response{}, nil)
		repos.On("ListCommits", mock.Anything, "octocat", "widgets", mock.MatchedBy(func(opts *github.CommitsListOptions) bool {
			return opts.Since.Equal(since) && opts.PerPage == listPageSize
		})).Return([]*github.RepositoryCommit{ghCommitStub("abcdef1234567", "add parser")}, &github.Response{}, nil)
		repos.On("GetCommit", mock.Anything, "octocat", "widgets", "abcdef1234567", mock.Anything).
			Return(ghCommitDetail("abcdef1234567"), &github.Response{}, nil)

		commits, err := fetcher.FetchCommitsSince(context.Background(), since)

		require.NoError(t, err)
		require.Len(t, commits, 1)
		assert.Equal(t, "octocat/widgets", commits[0].Repository)
		assert.Equal(t, "abcdef1", commits[0].SHA)
		assert.Equal(t, "add parser", commits[0].Message)
		assert.Equal(t, 12, commits[0].Stats.Additions)
		require.Len(t, commits[0].Files, 1)
		assert.Equal(t, "modified", commits[0].Files[0].Status)
	})

	t.Run("should treat an empty repository conflict as no commits", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		fetcher := NewFetcherWithService(repos, "octocat")

		repos.On("ListByUser", mock.Anything, "octocat", mock.Anything).
			Return([]*github.Repository{ghRepo("octocat", "empty")}, &github.Response{}, nil)
		repos.On("ListCommits", mock.Anything, "octocat", "empty", mock.Anything).
			Return(nil, nil, ghError(http.StatusConflict))

		commits, err := fetcher.FetchCommitsSince(context.Background(), since)

		require.NoError(t, err)
		assert.Empty(t, commits)
	})

	t.Run("should skip repositories that fail and keep going", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		fetcher := NewFetcherWithService(repos, "octocat")

		repos.On("ListByUser", mock.Anything, "octocat", mock.Anything).
			Return([]*github.Repository{ghRepo("octocat", "broken"), ghRepo("octocat", "widgets")}, &github.Response{}, nil)
		repos.On("ListCommits", mock.Anything, "octocat", "broken", mock.Anything).
			Return(nil, nil, fmt.Errorf("boom"))
		repos.On("ListCommits", mock.Anything, "octocat", "widgets", mock.Anything).
			Return([]*github.RepositoryCommit{ghCommitStub("abcdef1234567", "still works")}, &github.Response{}, nil)
		repos.On("GetCommit", mock.Anything, "octocat", "widgets", "abcdef1234567", mock.Anything).
			Return(ghCommitDetail("abcdef1234567"), &github.Response{}, nil)

		commits, err := fetcher.FetchCommitsSince(context.Background(), since)

		require.NoError(t, err)
		require.Len(t, commits, 1)
		assert.Equal(t, "still works", commits[0].Message)
	})

	t.Run("should skip commits whose detail fetch fails", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		fetcher := NewFetcherWithService(repos, "octocat")

		repos.On("ListByUser", mock.Anything, "octocat", mock.Anything).
			Return([]*github.Repository{ghRepo("octocat", "widgets")}, &github.Response{}, nil)
		repos.On("ListCommits", mock.Anything, "octocat", "widgets", mock.Anything).
			Return([]*github.RepositoryCommit{
				ghCommitStub("abcdef1234567", "fails"),
				ghCommitStub("1234567abcdef", "survives"),
			}, &github.Response{}, nil)
		repos.On("GetCommit", mock.Anything, "octocat", "widgets", "abcdef1234567", mock.Anything).
			Return(nil, nil, fmt.Errorf("detail exploded"))
		repos.On("GetCommit", mock.Anything, "octocat", "widgets", "1234567abcdef", mock.Anything).
			Return(ghCommitDetail("1234567abcdef"), &github.Response{}, nil)

		commits, err := fetcher.FetchCommitsSince(context.Background(), since)

		require.NoError(t, err)
		require.Len(t, commits, 1)
		assert.Equal(t, "survives", commits[0].Message)
	})

	t.Run("should abort when the repository listing fails", func(t *testing.T) {
		repos := &MockRepositoriesService{}
		fetcher := NewFetcherWithService(repos, "octocat")

		repos.On("ListByUser", mock.Anything, "octocat", mock.Anything).
			Return(nil, nil, ghError(http.StatusForbidden))

		_, err := fetcher.FetchCommitsSince(context.Background(), since)

		var authErr *domainerrors.AuthError
		assert.ErrorAs(t, err, &authErr)
	})
}
