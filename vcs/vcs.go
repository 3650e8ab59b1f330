// Package vcs abstracts version control systems. Currently just git, either
// through the git command line tool (vcs/gitcli) or go-git (vcs/gogit).
package vcs

import (
	"context"
	"fmt"
)

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

// RepositoryResolutionError is returned when a path is not inside a
// repository.
type RepositoryResolutionError struct {
	Path string
	Err  error
}

func (e *RepositoryResolutionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("vcs: not inside a repository: %v", e.Err)
	}
	return fmt.Sprintf("vcs: %s is not inside a repository: %v", e.Path, e.Err)
}

func (e *RepositoryResolutionError) Unwrap() error { return e.Err }

// LogFetchError is returned when a branch log could not be read.
type LogFetchError struct {
	Branch string
	Err    error
}

func (e *LogFetchError) Error() string {
	return fmt.Sprintf("vcs: failed to read log of %q: %v", e.Branch, e.Err)
}

func (e *LogFetchError) Unwrap() error { return e.Err }

// Interface is the capability fdiff needs from a version control system.
//
// FetchBranchLog returns one line per commit reachable from branch, newest
// first, each formatted as "id|date|summary" with the date as YYYY-MM-DD.
type Interface interface {
	ResolveRepositoryRoot(ctx context.Context, path string) (string, error)
	FetchBranchLog(ctx context.Context, root, branch string) (string, error)
}
