package models

import (
	"fmt"
	"time"
)

type (
	// RepoRef identifies a repository by owner login and name. Fetched
	// fresh on each run, never persisted.
	RepoRef struct {
		Owner string
		Name  string
	}

	// CommitStats aggregates line counts across all files of a commit.
	CommitStats struct {
		Additions int
		Deletions int
		Total     int
	}

	// FileChange is a read-only snapshot of one changed file as reported
	// by the remote API. Patch may be empty for binary or very large files.
	FileChange struct {
		Filename  string
		Status    string // added, removed, modified, renamed
		Additions int
		Deletions int
		Changes   int
		Patch     string
	}

	// Commit is a read-only snapshot of a remote commit plus its diff
	// detail. Lifetime is a single workflow run.
	Commit struct {
		Repository string // owner/name
		SHA        string // short sha (7 chars)
		Message    string
		Author     string
		Date       time.Time
		URL        string
		Files      []FileChange
		Stats      CommitStats
	}
)

// FullName returns the owner/name form used by the commits API.
func (r RepoRef) FullName() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}
