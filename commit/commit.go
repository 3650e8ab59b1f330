// Package commit contains code for reading and reconciling commits.
//
// Branches are compared by commit summary: a commit on one branch is
// considered present on another when a commit with a byte-equal summary
// exists there, regardless of its id or date.
package commit

import (
	"errors"

	"github.com/jeffrom/fdiff/model"
)

var ErrEmptyBranch = errors.New("commit: branch name is required")

// Request describes one comparison: the commits on Branch that are missing
// from Baseline, minus those matching Exclude.
type Request struct {
	Branch   string
	Baseline string
	Exclude  []string
	// RepoPath is any path inside the repository. Callers should set it
	// explicitly; an empty path is left to the vcs backend's default.
	RepoPath string
}

// Summaries returns the summary of each commit, in order.
func Summaries(commits []model.Commit) []string {
	summaries := make([]string, len(commits))
	for i, c := range commits {
		summaries[i] = c.Summary
	}
	return summaries
}
