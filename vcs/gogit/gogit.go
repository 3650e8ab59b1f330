// Package gogit implements vcs.Interface using go-git, so no git executable
// is required.
package gogit

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/jeffrom/fdiff/config"
	"github.com/jeffrom/fdiff/model"
	"github.com/jeffrom/fdiff/vcs"
)

// ShortHashLen matches git's default abbreviation length.
const ShortHashLen = 7

const logDateLayout = "2006-01-02"

type Git struct {
	cfg config.Config
	wd  string
}

// New returns a Git that resolves empty repository paths against wd.
func New(cfg config.Config, wd string) *Git {
	return &Git{
		cfg: cfg,
		wd:  wd,
	}
}

func (g *Git) ResolveRepositoryRoot(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = g.wd
	}
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", &vcs.RepositoryResolutionError{Path: path, Err: err}
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", &vcs.RepositoryResolutionError{Path: path, Err: err}
	}
	root, err := filepath.Abs(wt.Filesystem.Root())
	if err != nil {
		return "", &vcs.RepositoryResolutionError{Path: path, Err: err}
	}
	g.cfg.Debugf("gogit: resolved %q to %s", path, root)
	return root, nil
}

func (g *Git) FetchBranchLog(ctx context.Context, root, branch string) (string, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return "", &vcs.LogFetchError{Branch: branch, Err: err}
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(branch))
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			err = vcs.NotFoundError{Ref: branch}
		}
		return "", &vcs.LogFetchError{Branch: branch, Err: err}
	}

	iter, err := repo.Log(&git.LogOptions{From: *hash, Order: git.LogOrderCommitterTime})
	if err != nil {
		return "", &vcs.LogFetchError{Branch: branch, Err: err}
	}
	defer iter.Close()

	var lines []string
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		lines = append(lines, renderCommit(c).LogLine())
		return nil
	})
	if err != nil {
		return "", &vcs.LogFetchError{Branch: branch, Err: fmt.Errorf("gogit: walking log: %w", err)}
	}
	g.cfg.Debugf("gogit: read %d commits from %s", len(lines), branch)
	return strings.Join(lines, "\n"), nil
}

func renderCommit(c *object.Commit) model.Commit {
	id := c.Hash.String()
	if len(id) > ShortHashLen {
		id = id[:ShortHashLen]
	}
	return model.Commit{
		ID:      id,
		Date:    c.Author.When.Format(logDateLayout),
		Summary: Subject(c.Message),
	}
}

// Subject returns the first paragraph of a commit message with its lines
// joined by spaces, like git's %s placeholder.
func Subject(message string) string {
	message = strings.TrimLeft(message, "\r\n")
	var parts []string
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			break
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

var _ vcs.Interface = (*Git)(nil)
