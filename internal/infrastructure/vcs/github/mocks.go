package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockRepositoriesService struct {
	mock.Mock
}

func (m *MockRepositoriesService) ListByUser(ctx context.Context, user string, opts *github.RepositoryListByUserOptions) ([]*github.Repository, *github.Response, error) {
	args := m.Called(ctx, user, opts)
	var repos []*github.Repository
	if args.Get(0) != nil {
		repos = args.Get(0).([]*github.Repository)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return repos, resp, args.Error(2)
}

func (m *MockRepositoriesService) ListCommits(ctx context.Context, owner, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	var commits []*github.RepositoryCommit
	if args.Get(0) != nil {
		commits = args.Get(0).([]*github.RepositoryCommit)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return commits, resp, args.Error(2)
}

func (m *MockRepositoriesService) GetCommit(ctx context.Context, owner, repo, sha string, opts *github.ListOptions) (*github.RepositoryCommit, *github.Response, error) {
	args := m.Called(ctx, owner, repo, sha, opts)
	var commit *github.RepositoryCommit
	if args.Get(0) != nil {
		commit = args.Get(0).(*github.RepositoryCommit)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return commit, resp, args.Error(2)
}
