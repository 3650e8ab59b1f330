package commit

import (
	"context"
	"fmt"

	"github.com/jeffrom/fdiff/config"
	"github.com/jeffrom/fdiff/model"
	"github.com/jeffrom/fdiff/vcs"
)

type Engine struct {
	cfg config.Config
	vcs vcs.Interface
}

func NewEngine(cfg config.Config, vcs vcs.Interface) *Engine {
	return &Engine{
		cfg: cfg,
		vcs: vcs,
	}
}

// Reconcile returns the commits on req.Branch that are missing from
// req.Baseline, with req.Exclude applied to the result. It returns either
// the full result or the first error encountered.
func (e *Engine) Reconcile(ctx context.Context, req Request) ([]model.Commit, error) {
	if req.Branch == "" || req.Baseline == "" {
		return nil, ErrEmptyBranch
	}

	root, err := e.vcs.ResolveRepositoryRoot(ctx, req.RepoPath)
	if err != nil {
		return nil, err
	}
	e.cfg.Debugf("repository root: %s", root)

	branchCommits, err := e.readBranch(ctx, root, req.Branch)
	if err != nil {
		return nil, err
	}
	baselineCommits, err := e.readBranch(ctx, root, req.Baseline)
	if err != nil {
		return nil, err
	}

	missing := Reconcile(branchCommits, baselineCommits)
	e.cfg.Debugf("%d of %d commit(s) on %s are missing from %s", len(missing), len(branchCommits), req.Branch, req.Baseline)

	res := Exclude(missing, req.Exclude)
	if n := len(missing) - len(res); n > 0 {
		e.cfg.Debugf("excluded %d commit(s)", n)
	}
	return res, nil
}

func (e *Engine) readBranch(ctx context.Context, root, branch string) ([]model.Commit, error) {
	raw, err := e.vcs.FetchBranchLog(ctx, root, branch)
	if err != nil {
		return nil, err
	}
	commits, err := ParseLog(raw)
	if err != nil {
		return nil, fmt.Errorf("branch %s: %w", branch, err)
	}
	e.cfg.Debugf("read %d commit(s) from %s", len(commits), branch)
	return commits, nil
}
