// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jeffrom/fdiff/config"
	"github.com/jeffrom/fdiff/vcs"
)

// Git implements vcs.Interface using the git commandline tool.
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
	b, err := g.call(ctx, path, []string{"rev-parse", "--show-toplevel"})
	if err != nil {
		return "", &vcs.RepositoryResolutionError{Path: path, Err: err}
	}
	root := strings.TrimSpace(string(b))
	if root == "" {
		return "", &vcs.RepositoryResolutionError{Path: path, Err: fmt.Errorf("gitcli: no worktree (bare repository?)")}
	}
	return filepath.Clean(root), nil
}

func (g *Git) FetchBranchLog(ctx context.Context, root, branch string) (string, error) {
	if strings.HasPrefix(branch, "-") {
		return "", &vcs.LogFetchError{Branch: branch, Err: fmt.Errorf("gitcli: invalid branch name %q", branch)}
	}

	// verify first so a missing branch is reported as such rather than as a
	// generic git log failure.
	if _, err := g.call(ctx, root, []string{"rev-parse", "--verify", "--quiet", branch + "^{commit}"}); err != nil {
		return "", &vcs.LogFetchError{Branch: branch, Err: vcs.NotFoundError{Ref: branch}}
	}

	args := []string{
		"log",
		"--no-color",
		"--pretty=format:" + LogPrettyFormat,
		"--date=format:" + LogDateFormat,
		branch,
		"--",
	}
	b, err := g.call(ctx, root, args)
	if err != nil {
		return "", &vcs.LogFetchError{Branch: branch, Err: err}
	}
	return string(b), nil
}

var _ vcs.Interface = (*Git)(nil)
